// Copyright (c) 2026 randomLevelup
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "github.com/pkg/errors"

// A failed point location or a half-edge with a missing incident triangle
// means the topology is already inconsistent; continuing would produce a
// silently wrong triangulation. Threading errors through every recursive
// step would obscure the algorithm, so internal code panics with a tagged
// error and the public API recovers it into a returned error.

type invariantError error

func fatalf(format string, args ...interface{}) {
	panic(invariantError(errors.Errorf(format, args...)))
}

// recoverInvariant converts a recovered invariantError into an error.
// Any other panic is re-raised.
func recoverInvariant(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(invariantError); ok {
		return err
	}
	panic(r)
}
