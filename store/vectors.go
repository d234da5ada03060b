package store

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// SinkVectorsFile reads a vectors file (one "id v0 v1 .. vk-1" line per
// node, the format embedding.Walk writes) from path and records each row
// through sink.PutVector.
func SinkVectorsFile(sink *Postgres, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("store: opening %s: %w", path, err)
	}
	defer f.Close()

	ctx := context.Background()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("store: parsing vector id %q: %w", fields[0], err)
		}
		vec := make([]float64, len(fields)-1)
		for i, tok := range fields[1:] {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return fmt.Errorf("store: parsing vector component %q: %w", tok, err)
			}
			vec[i] = v
		}
		if err := sink.PutVector(ctx, id, vec); err != nil {
			return err
		}
	}
	return sc.Err()
}
