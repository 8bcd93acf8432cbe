package php

import (
	"fmt"
	"strings"

	"github.com/stokaro/anvil/core/ast"
	"github.com/stokaro/anvil/core/emit"
)

// indentBlock indents every non-empty line of a rendered block by n
// four-space levels, for splicing rendered node output into file templates.
func indentBlock(block string, n int) string {
	pad := strings.Repeat("    ", n)
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// MigrationFile renders the complete migration PHP file for a schema node.
func MigrationFile(node *ast.MigrationNode) (string, error) {
	body, err := New().Render(node)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`<?php

use Illuminate\Database\Migrations\Migration;
use Illuminate\Database\Schema\Blueprint;
use Illuminate\Support\Facades\Schema;

return new class extends Migration
{
    public function up(): void
    {
%s
    }

    public function down(): void
    {
        Schema::dropIfExists('%s');
    }
};
`, indentBlock(body, 2), node.Table), nil
}

// ModelSpec carries the derived inputs for a model file.
type ModelSpec struct {
	Name        string
	Table       string
	Fillable    []string
	Casts       []emit.Cast
	SoftDeletes bool
}

// ModelFile renders the Eloquent model class.
func ModelFile(spec ModelSpec) string {
	var b strings.Builder

	b.WriteString("<?php\n\nnamespace App\\Models;\n\n")
	b.WriteString("use Illuminate\\Database\\Eloquent\\Factories\\HasFactory;\n")
	b.WriteString("use Illuminate\\Database\\Eloquent\\Model;\n")
	if spec.SoftDeletes {
		b.WriteString("use Illuminate\\Database\\Eloquent\\SoftDeletes;\n")
	}
	b.WriteString(fmt.Sprintf("\nclass %s extends Model\n{\n    use HasFactory;\n", spec.Name))
	if spec.SoftDeletes {
		b.WriteString("    use SoftDeletes;\n")
	}

	b.WriteString(fmt.Sprintf("\n    protected $table = '%s';\n", spec.Table))

	b.WriteString("\n    protected $fillable = [\n")
	for _, field := range spec.Fillable {
		b.WriteString(fmt.Sprintf("        '%s',\n", field))
	}
	b.WriteString("    ];\n")

	if len(spec.Casts) > 0 {
		b.WriteString("\n    protected $casts = [\n")
		for _, cast := range spec.Casts {
			b.WriteString(fmt.Sprintf("        '%s' => '%s',\n", cast.Field, cast.Cast))
		}
		b.WriteString("    ];\n")
	}

	b.WriteString("}\n")
	return b.String()
}

// RequestFile renders a form request class around a rendered rule set. The
// class name follows the mode: StoreProductRequest or UpdateProductRequest.
func RequestFile(set *ast.RuleSetNode) (string, error) {
	body, err := New().Render(set)
	if err != nil {
		return "", err
	}

	prefix := "Store"
	if set.Mode == "update" {
		prefix = "Update"
	}

	return fmt.Sprintf(`<?php

namespace App\Http\Requests;

use Illuminate\Foundation\Http\FormRequest;

class %s%sRequest extends FormRequest
{
    public function authorize(): bool
    {
        return true;
    }

    public function rules(): array
    {
%s
    }
}
`, prefix, set.Entity, indentBlock(body, 2)), nil
}

// ControllerSpec carries the derived names for a controller file.
type ControllerSpec struct {
	Name         string // PascalCase entity name
	Variable     string // camelCase instance variable
	RouteSegment string // plural kebab-case URL segment
	API          bool   // render the API variant (resources, JSON responses)
}

// ControllerFile renders a resource controller. The API variant wraps
// responses in the generated resource class; the web variant redirects to
// views following Laravel's resource conventions.
func ControllerFile(spec ControllerSpec) string {
	if spec.API {
		return apiControllerFile(spec)
	}
	return webControllerFile(spec)
}

func apiControllerFile(spec ControllerSpec) string {
	return fmt.Sprintf(`<?php

namespace App\Http\Controllers\Api;

use App\Http\Controllers\Controller;
use App\Http\Requests\Store%[1]sRequest;
use App\Http\Requests\Update%[1]sRequest;
use App\Http\Resources\%[1]sResource;
use App\Models\%[1]s;

class %[1]sController extends Controller
{
    public function index()
    {
        return %[1]sResource::collection(%[1]s::latest()->paginate());
    }

    public function store(Store%[1]sRequest $request)
    {
        $%[2]s = %[1]s::create($request->validated());

        return new %[1]sResource($%[2]s);
    }

    public function show(%[1]s $%[2]s)
    {
        return new %[1]sResource($%[2]s);
    }

    public function update(Update%[1]sRequest $request, %[1]s $%[2]s)
    {
        $%[2]s->update($request->validated());

        return new %[1]sResource($%[2]s);
    }

    public function destroy(%[1]s $%[2]s)
    {
        $%[2]s->delete();

        return response()->noContent();
    }
}
`, spec.Name, spec.Variable)
}

func webControllerFile(spec ControllerSpec) string {
	return fmt.Sprintf(`<?php

namespace App\Http\Controllers;

use App\Http\Requests\Store%[1]sRequest;
use App\Http\Requests\Update%[1]sRequest;
use App\Models\%[1]s;

class %[1]sController extends Controller
{
    public function index()
    {
        return view('%[3]s.index', ['%[2]ss' => %[1]s::latest()->paginate()]);
    }

    public function create()
    {
        return view('%[3]s.create');
    }

    public function store(Store%[1]sRequest $request)
    {
        %[1]s::create($request->validated());

        return redirect()->route('%[3]s.index');
    }

    public function edit(%[1]s $%[2]s)
    {
        return view('%[3]s.edit', ['%[2]s' => $%[2]s]);
    }

    public function update(Update%[1]sRequest $request, %[1]s $%[2]s)
    {
        $%[2]s->update($request->validated());

        return redirect()->route('%[3]s.index');
    }

    public function destroy(%[1]s $%[2]s)
    {
        $%[2]s->delete();

        return redirect()->route('%[3]s.index');
    }
}
`, spec.Name, spec.Variable, spec.RouteSegment)
}

// ResourceFile renders the API resource class serializing the declared
// fields in order, bracketed by id and the timestamp pair.
func ResourceFile(name string, fields []string, withTimestamps bool) string {
	var lines strings.Builder
	lines.WriteString("            'id' => $this->id,\n")
	for _, field := range fields {
		lines.WriteString(fmt.Sprintf("            '%s' => $this->%s,\n", field, field))
	}
	if withTimestamps {
		lines.WriteString("            'created_at' => $this->created_at,\n")
		lines.WriteString("            'updated_at' => $this->updated_at,\n")
	}

	return fmt.Sprintf(`<?php

namespace App\Http\Resources;

use Illuminate\Http\Request;
use Illuminate\Http\Resources\Json\JsonResource;

class %sResource extends JsonResource
{
    public function toArray(Request $request): array
    {
        return [
%s        ];
    }
}
`, name, lines.String())
}

// PolicyFile renders a permissive model policy as a starting point.
func PolicyFile(name string) string {
	return fmt.Sprintf(`<?php

namespace App\Policies;

use App\Models\%[1]s;
use App\Models\User;

class %[1]sPolicy
{
    public function viewAny(User $user): bool
    {
        return true;
    }

    public function view(User $user, %[1]s $%[2]s): bool
    {
        return true;
    }

    public function create(User $user): bool
    {
        return true;
    }

    public function update(User $user, %[1]s $%[2]s): bool
    {
        return true;
    }

    public function delete(User $user, %[1]s $%[2]s): bool
    {
        return true;
    }
}
`, name, strings.ToLower(name[:1])+name[1:])
}

// FeatureTestFile renders a smoke feature test against the generated API
// routes, using the same collection URL the frontend artifacts use.
func FeatureTestFile(name, apiPath string) string {
	return fmt.Sprintf(`<?php

namespace Tests\Feature;

use App\Models\%[1]s;
use Illuminate\Foundation\Testing\RefreshDatabase;
use Tests\TestCase;

class %[1]sTest extends TestCase
{
    use RefreshDatabase;

    public function test_index_returns_ok(): void
    {
        $this->getJson('%[2]s')->assertOk();
    }

    public function test_show_returns_ok(): void
    {
        $%[3]s = %[1]s::factory()->create();

        $this->getJson('%[2]s/' . $%[3]s->id)->assertOk();
    }
}
`, name, apiPath, strings.ToLower(name[:1])+name[1:])
}

// RouteRegistration renders the apiResource registration line appended to the
// shared route file. The line doubles as the idempotence marker: if the route
// file already contains it, registration is skipped.
//
// The registered segment is the collection URL minus the "/api" prefix the
// route file is already mounted under, so routes, frontend calls and feature
// tests all resolve to the same URL.
func RouteRegistration(name, apiPath string) string {
	segment := strings.TrimPrefix(apiPath, "/api/")
	return fmt.Sprintf("Route::apiResource('%s', \\App\\Http\\Controllers\\Api\\%sController::class);", segment, name)
}
