package table

// Test-Bridge (White-Box) for the defensive header binding path.
//
// Purpose:
//   - Expose the UNEXPORTED bindHeaders helper to table_test ONLY, so the
//     duplicate-header safety net can be exercised directly: separator
//     inference prunes header-clashing candidates, which makes the
//     duplicate branch unreachable through New on well-formed input.
//
// Behavior & Determinism:
//   - Thin pass-through; no side effects, no allocations of its own.

// BindHeaders_TestOnly forwards to the private bindHeaders helper.
var BindHeaders_TestOnly = bindHeaders
