// Package store holds the session storage used by the backend client to keep
// auth sessions between runs.
//
// [SQLiteSessionStorage] is the durable implementation; its schema lives in
// the migrations package and is applied on open. [MemorySessionStorage] keeps
// items in process memory.
package store
