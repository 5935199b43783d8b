// Package gravity runs the gravity assist program: an intcode program whose
// inputs, the noun and the verb, live in memory cells 1 and 2, and whose
// output is left in cell 0.
package gravity
