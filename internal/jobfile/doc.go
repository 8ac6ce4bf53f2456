// Package jobfile reads and writes the JSON envelopes exchanged with the flow
// host: the job handed to a plugin and the result it returns.
//
// Writes go to a temporary sibling file that is renamed into place while an
// exclusive lock on "<path>.lock" is held, so concurrent runs targeting the
// same file never interleave.
package jobfile
