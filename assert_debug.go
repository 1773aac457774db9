//go:build vecdebug

package vec

import "fmt"

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("vec: "+format, args...))
	}
}
