// Package computer contains the core receive-side components of a distributed
// graph-computation worker: buffering of incoming message data per partition,
// asynchronous external sorting of buffered data to disk, and merged iteration
// over the sorted results. This root package defines the types which are
// employed when embedding the receive engine into a worker, as well as in the
// extension of the engine, and is an overview of its key concepts.
package computer
