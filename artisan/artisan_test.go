package artisan_test

import (
	"context"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/anvil/artisan"
)

func TestRecorder(t *testing.T) {
	c := qt.New(t)

	rec := &artisan.Recorder{}
	err := rec.Run(context.Background(), "migrate")
	c.Assert(err, qt.IsNil)
	err = rec.Run(context.Background(), "make:migration", "create_products_table")
	c.Assert(err, qt.IsNil)

	c.Assert(rec.Commands, qt.DeepEquals, [][]string{
		{"migrate"},
		{"make:migration", "create_products_table"},
	})

	rec.Err = errors.New("boom")
	c.Assert(rec.Run(context.Background(), "migrate"), qt.Equals, rec.Err)
}

func TestError(t *testing.T) {
	c := qt.New(t)

	underlying := errors.New("exit status 1")
	err := &artisan.Error{Command: "migrate", Output: "SQLSTATE[HY000]", Err: underlying}
	c.Assert(err.Error(), qt.Equals, "artisan migrate failed: exit status 1: SQLSTATE[HY000]")
	c.Assert(errors.Unwrap(err), qt.Equals, underlying)

	bare := &artisan.Error{Command: "migrate", Err: underlying}
	c.Assert(bare.Error(), qt.Equals, "artisan migrate failed: exit status 1")
}

func TestExec_FailureCarriesOutput(t *testing.T) {
	c := qt.New(t)

	// "php" is not expected on the test host; the point is that a failed
	// start surfaces as an *artisan.Error for the issued command.
	exec := &artisan.Exec{Binary: "definitely-not-a-binary", Dir: c.TempDir()}
	err := exec.Run(context.Background(), "migrate")

	var artisanErr *artisan.Error
	c.Assert(errors.As(err, &artisanErr), qt.IsTrue)
	c.Assert(artisanErr.Command, qt.Equals, "migrate")
}
