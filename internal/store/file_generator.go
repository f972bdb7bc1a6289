package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	computer "github.com/1216063060/incubator-hugegraph-computer"
	"github.com/1216063060/incubator-hugegraph-computer/config"
	uuid "github.com/gofrs/uuid"
)

// SuperstepFileGenerator allocates unique spill file paths for one superstep
// of a job, distributing them round-robin across the configured data dirs
type SuperstepFileGenerator struct {
	dataDirs  []string
	jobID     string
	superstep int
	nextDir   uint64
}

// CreateSuperstepFileGenerator produces a FileGenerator for one superstep
func CreateSuperstepFileGenerator(opts *config.Options, superstep int) computer.FileGenerator {
	return &SuperstepFileGenerator{
		dataDirs:  opts.DataDirs,
		jobID:     opts.JobID,
		superstep: superstep,
	}
}

// NextPath returns a fresh, unique path for a spill file of the given category
func (fg *SuperstepFileGenerator) NextPath(fileType string) string {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID: %v", err)
	}
	next := atomic.AddUint64(&fg.nextDir, 1)
	dir := filepath.Join(fg.dataDirs[int(next)%len(fg.dataDirs)],
		fg.jobID,
		fmt.Sprintf("superstep_%d", fg.superstep),
		fileType)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Unable to create spill directory %s: %v", dir, err)
	}
	return filepath.Join(dir, id.String())
}
