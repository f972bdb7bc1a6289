package config

import (
	"io/ioutil"
	"log"
	"os"
	"time"

	"github.com/tidwall/gjson"
)

// Options configure the receive-side engine of a worker
type Options struct {
	JobID                     string        // identifier of the running job, used in spill file paths
	PartitionCount            int           // [REQUIRED] the number of partitions graph data is divided into
	ReceivedBuffersBytesLimit int64         // bytes of received buffers to accumulate before a background sort is triggered
	WaitSortTimeout           time.Duration // how long to wait for an in-flight sort before surfacing a timeout
	MergeFileNum              int           // upper bound on output files after a merge-reduction pass
	RecvFileMode              bool          // iff true, senders transfer pre-sorted file regions instead of raw buffers
	DataDirs                  []string      // locations for storing spilled files, used round-robin
	SortPoolSize              int           // number of concurrent background sort tasks across all partitions
	Host                      string        // hostname for the receive endpoint to bind to
	Port                      int           // port for the receive endpoint to bind to
	RPCTimeout                time.Duration // timeout for RPC calls made by senders
	LogLevel                  int           // minimum level of log messages to emit
}

// CloneOptions makes a copy of an Options
func CloneOptions(opts *Options) *Options {
	clone := *opts
	clone.DataDirs = append([]string{}, opts.DataDirs...)
	return &clone
}

// EnsureDefaultOptionsValues crashes on missing required options and fills
// in defaults for the rest
func EnsureDefaultOptionsValues(opts *Options) {
	// crash if certain required options are not supplied
	if opts.PartitionCount <= 0 {
		log.Fatal("Options.PartitionCount must be greater than 0")
	}
	// default certain options if not supplied
	if len(opts.JobID) == 0 {
		opts.JobID = "local"
	}
	if opts.ReceivedBuffersBytesLimit == 0 {
		opts.ReceivedBuffersBytesLimit = 100 * 1024 * 1024
	}
	if opts.WaitSortTimeout == 0 {
		opts.WaitSortTimeout = time.Duration(10) * time.Minute
	}
	if opts.MergeFileNum == 0 {
		opts.MergeFileNum = 10
	}
	if len(opts.DataDirs) == 0 {
		opts.DataDirs = []string{os.TempDir()}
	}
	if opts.SortPoolSize == 0 {
		opts.SortPoolSize = 4
	}
	if len(opts.Host) == 0 {
		opts.Host = "0.0.0.0"
	}
	if opts.Port == 0 {
		opts.Port = 1855
	}
	if opts.RPCTimeout == 0 {
		opts.RPCTimeout = time.Duration(5) * time.Second
	}
}

// LoadOptions reads Options from a JSON file. Keys are dotted option paths,
// e.g.:
//   {
//     "job.id": "job-001",
//     "job.partitions_count": 4,
//     "worker.received_buffers_bytes_limit": 1048576,
//     "worker.wait_sort_timeout": "10m",
//     "worker.data_dirs": ["/data1", "/data2"],
//     "hgkv.merge_files_num": 10,
//     "transport.recv_file_mode": false
//   }
// Options absent from the file are defaulted via EnsureDefaultOptionsValues.
func LoadOptions(path string) (*Options, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts := &Options{}
	if res := gjson.GetBytes(data, "job\\.id"); res.Exists() {
		opts.JobID = res.String()
	}
	if res := gjson.GetBytes(data, "job\\.partitions_count"); res.Exists() {
		opts.PartitionCount = int(res.Int())
	}
	if res := gjson.GetBytes(data, "worker\\.received_buffers_bytes_limit"); res.Exists() {
		opts.ReceivedBuffersBytesLimit = res.Int()
	}
	if res := gjson.GetBytes(data, "worker\\.wait_sort_timeout"); res.Exists() {
		timeout, err := time.ParseDuration(res.String())
		if err != nil {
			return nil, err
		}
		opts.WaitSortTimeout = timeout
	}
	if res := gjson.GetBytes(data, "worker\\.data_dirs"); res.Exists() {
		for _, dir := range res.Array() {
			opts.DataDirs = append(opts.DataDirs, dir.String())
		}
	}
	if res := gjson.GetBytes(data, "worker\\.sort_pool_size"); res.Exists() {
		opts.SortPoolSize = int(res.Int())
	}
	if res := gjson.GetBytes(data, "hgkv\\.merge_files_num"); res.Exists() {
		opts.MergeFileNum = int(res.Int())
	}
	if res := gjson.GetBytes(data, "transport\\.recv_file_mode"); res.Exists() {
		opts.RecvFileMode = res.Bool()
	}
	if res := gjson.GetBytes(data, "transport\\.server_host"); res.Exists() {
		opts.Host = res.String()
	}
	if res := gjson.GetBytes(data, "transport\\.server_port"); res.Exists() {
		opts.Port = int(res.Int())
	}
	if res := gjson.GetBytes(data, "transport\\.rpc_timeout"); res.Exists() {
		timeout, err := time.ParseDuration(res.String())
		if err != nil {
			return nil, err
		}
		opts.RPCTimeout = timeout
	}
	EnsureDefaultOptionsValues(opts)
	return opts, nil
}
