package maze

// loadBinary is never reached by Load today: DetectFormat has no sniffing
// rule that reports FormatBinary, mirroring the reference's
// isMazeFileBinType (which unconditionally returns false). It exists so
// that a future binary format can be wired in without touching Load's
// dispatch, per SPEC_FULL.md §4.C.
func loadBinary(path string) (*Maze, error) {
	return nil, ErrBinaryUnimplemented
}
