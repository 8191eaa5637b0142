package composables

import (
	"fmt"
	"strings"

	"github.com/Habityzer/nuxt-openapi-composables/internal/engine"
	genspec "github.com/Habityzer/nuxt-openapi-composables/internal/spec"
)

const generatedHeader = "// Code generated by openapi-composables. DO NOT EDIT.\n"

// renderComposable renders one use<Name>Api.ts file. Every method becomes
// an arrow function forwarding {path, method, contentType} to the runtime
// call builder, with path parameters lifted into function arguments.
func renderComposable(u engine.Unit, s *genspec.Schema, opts Options) string {
	var b strings.Builder
	b.WriteString(generatedHeader)
	fmt.Fprintf(&b, "import { %s } from '%s'\n\n", opts.BuilderFactory, opts.BuilderImport)
	fmt.Fprintf(&b, "export const use%sApi = () => {\n", u.Name)
	fmt.Fprintf(&b, "  const caller = %s()\n", opts.BuilderFactory)

	for _, m := range u.Methods {
		b.WriteString("\n")
		if summary := operationSummary(s, m); summary != "" {
			fmt.Fprintf(&b, "  /** %s */\n", summary)
		} else {
			fmt.Fprintf(&b, "  /** %s %s */\n", strings.ToUpper(string(m.HTTPVerb)), m.Path)
		}
		args := pathParams(m.Path)
		args = append(args, "options = {}")
		fmt.Fprintf(&b, "  const %s = (%s) =>\n", m.Name, strings.Join(args, ", "))
		fmt.Fprintf(&b, "    caller.request({ path: `%s`, method: '%s', contentType: '%s', ...options })\n",
			interpolatePath(m.Path), m.HTTPVerb, m.ContentType)
	}

	b.WriteString("\n  return {\n")
	for _, m := range u.Methods {
		fmt.Fprintf(&b, "    %s,\n", m.Name)
	}
	b.WriteString("  }\n}\n")
	return b.String()
}

// renderIndex renders the barrel re-exporting every emitted composable.
func renderIndex(units []engine.Unit) string {
	var b strings.Builder
	b.WriteString(generatedHeader)
	for _, u := range units {
		fmt.Fprintf(&b, "export { use%sApi } from './use%sApi'\n", u.Name, u.Name)
	}
	return b.String()
}

// pathParams extracts {param} names in path order.
func pathParams(path string) []string {
	var out []string
	for _, seg := range strings.Split(path, "/") {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			out = append(out, strings.TrimSuffix(strings.TrimPrefix(seg, "{"), "}"))
		}
	}
	return out
}

// interpolatePath turns /api/tasks/{id} into /api/tasks/${id} for use in a
// template literal.
func interpolatePath(path string) string {
	return strings.NewReplacer("{", "${", "}", "}").Replace(path)
}

func operationSummary(s *genspec.Schema, m engine.Method) string {
	if s == nil {
		return ""
	}
	if op := s.Paths[m.Path].Operation(m.HTTPVerb); op != nil {
		return op.Summary
	}
	return ""
}
