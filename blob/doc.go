// Package blob defines the file-storage collaborator the engine uploads
// binary data through, e.g. an image pulled off the system clipboard before
// it becomes an image node. Two implementations ship with the module: a
// filesystem store and an in-memory store for tests. The engine only
// depends on the Store interface.
package blob
