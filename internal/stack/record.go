package stack

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/ydb-platform/fwdlist/internal/xstring"
)

type recordOptions struct {
	packagePath bool
}

type recordOption func(opts *recordOptions)

func PackagePath(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.packagePath = b
	}
}

type call struct {
	function uintptr
	file     string
	line     int
}

func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

// Record renders the call site as `path/pkg.Func(file.go:line)`.
func (c call) Record(opts ...recordOption) string {
	options := recordOptions{
		packagePath: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	name := strings.ReplaceAll(runtime.FuncForPC(c.function).Name(), "[...]", "")
	file := c.file
	if i := strings.LastIndex(file, "/"); i > -1 {
		file = file[i+1:]
	}

	buffer := xstring.Buffer()
	defer buffer.Free()
	if !options.packagePath {
		if i := strings.LastIndex(name, "/"); i > -1 {
			name = name[i+1:]
		}
	}
	buffer.WriteString(name)
	fmt.Fprintf(buffer, "(%s:%d)", file, c.line)

	return buffer.String()
}

func Record(depth int, opts ...recordOption) string {
	return Call(depth + 1).Record(opts...)
}
