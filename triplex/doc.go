/*
Package triplex detects and aligns intramolecular triplex-forming regions in
DNA sequences.

A triplex is a pseudo-palindromic structure in which a single strand folds
back on itself through a short loop, and a third strand pairs with the
resulting duplex through Hoogsteen-like hydrogen bonds. Search runs a
dynamic-programming scan over antidiagonals of a virtual alignment matrix,
tracking not just a running score but also the isomorphic group and twist
angle of the last matched triplet, so that geometrically compatible triplets
can chain into a stem while incompatible ones are penalized. Align takes a
single candidate substring and reconstructs its aligned stem-and-loop
representation from a full rule matrix.

The score, group and twist tables and the Gumbel parameters are bundled into
a Config built once with NewConfig; the scalar parameters and penalties are
passed alongside it as Params and Penalization values. Nothing in this
package holds mutable package-level state, so a single Config and its
callers can be shared freely across goroutines.
*/
package triplex
