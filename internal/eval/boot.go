package eval

import "github.com/glyphlang/glyph/internal/path"

// Boot registers the path dispatchers the core relies on. It must run
// once before any Task evaluates a PATH/GET_PATH/SET_PATH value;
// cmd/glyph's main calls this at process start. Idempotent: repeated
// calls just overwrite the same table entries.
func Boot() {
	path.RegisterBuiltins()
}
