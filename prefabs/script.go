package prefabs

import (
	"context"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// courseScriptTimeout bounds a generator script so a runaway loop cannot
// hang course loading.
const courseScriptTimeout = 2 * time.Second

// RunCourseScript runs a tengo course generator. The script must assign a
// map shaped like a course yaml to the global `course`. The yaml defaults
// are not applied here; LoadCourse does that.
func RunCourseScript(src []byte) (CourseSpec, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("course", map[string]any{}); err != nil {
		return CourseSpec{}, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), courseScriptTimeout)
	defer cancel()

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return CourseSpec{}, err
	}
	if !compiled.IsDefined("course") {
		return CourseSpec{}, fmt.Errorf("script does not define course")
	}
	raw := compiled.Get("course").Map()
	if raw == nil {
		return CourseSpec{}, fmt.Errorf("course must be a map, got %s", compiled.Get("course").ValueType())
	}
	return DecodeSpec[CourseSpec](raw)
}
