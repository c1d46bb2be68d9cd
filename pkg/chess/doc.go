// Package chess provides the chess primitives the search core treats as an
// opaque external service: board representation, move generation, legality,
// Zobrist hashing and FEN. Nothing in pkg/eval, pkg/order, pkg/tt,
// pkg/negamax or pkg/search reaches into this package's internals; they only
// call through Position's exported methods.
package chess
