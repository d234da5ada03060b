package hierarchy

import (
	"bufio"
	"io"
)

// LeafFunc is called once per leaf record encountered by ForEachLeaf, with
// the record's depth and its original node IDs.
type LeafFunc func(depth int, originalIDs []int) error

// ForEachLeaf replays a hierarchy record stream, invoking fn for every
// leaf record in the same pre-order the stream was written in. It is the
// read-side counterpart to Recurse, used by callers (the store sink,
// offline analysis) that only care about leaf membership and not the
// interior tree shape.
func ForEachLeaf(r io.Reader, fn LeafFunc) error {
	br := bufio.NewReader(r)
	for {
		depth, count, err := ReadHeader(br)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := walkLeaves(br, depth, count, fn); err != nil {
			return err
		}
	}
}

func walkLeaves(br *bufio.Reader, depth, count int, fn LeafFunc) error {
	if count == 1 {
		ids, err := ReadLeafIDs(br)
		if err != nil {
			return err
		}
		return fn(depth, ids)
	}
	for c := 0; c < count; c++ {
		childDepth, childCount, err := ReadHeader(br)
		if err != nil {
			return err
		}
		if err := walkLeaves(br, childDepth, childCount, fn); err != nil {
			return err
		}
	}
	return nil
}
