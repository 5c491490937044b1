// Package protocol reads and writes the two plain-text request/response
// formats of flowmatch and converts between them.
//
// All formats are whitespace-separated integer tokens; line breaks carry no
// meaning on input, so any mix of spaces and newlines is accepted. Extra
// tokens after a complete message are left unread.
//
// Max-flow problem (1-indexed node ids):
//
//	V source sink E
//	u v capacity      (E lines)
//
// Max-flow solution (1-indexed, positive-flow edges only):
//
//	V
//	source sink max_flow
//	edge_count
//	u v flow          (edge_count lines)
//
// Matching problem (a in 1..X, b in 1..Y, local to each side):
//
//	X Y E
//	a b               (E lines)
//
// Matching solution (network ids: left 1..X, right X+1..X+Y, smaller first):
//
//	X Y
//	matching_size
//	u v               (matching_size lines)
//
// ToFlowProblem and ToMatchingSolution translate a matching instance into a
// max-flow instance with an explicit source (1) and sink (X+Y+2), and a
// max-flow solution back into a matching. Chaining them through SolveFlow
// yields the same matching as SolveMatching.
//
// Token errors (missing, non-integer, negative counts) wrap ErrMalformedInput
// and are reported before any graph is built.
package protocol
