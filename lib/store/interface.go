package store

import (
	"fmt"

	"github.com/ValentinKolb/dTree/lib/tree"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// TreeFactory is a function type that creates the tree used by a store.
// This is used to abstract the creation of the tree from the store implementation.
type TreeFactory func() tree.ITree[string, string]

// KV is a key-value pair reported by List. Keys are absolute within the store that
// produced them and joined with the separator of that store.
type KV struct {
	Key   string
	Value string
}

// IStore is the interface for interacting with a hierarchical key-value store.
//
// Keys are paths written as strings: the segments are joined by a separator ("/" by default),
// so "users/alice/age" addresses the value "age" below "users/alice". Leading and trailing
// separators are ignored and the empty key addresses the root. A key with an empty segment
// ("a//b") is rejected with RetCInvalidKey.
//
// All operations return a *Error on failure (nil on success).
type IStore interface {
	// Set inserts or updates the value at key.
	Set(key string, value string) (err error)
	// SetIfUnset inserts the value at key if the key holds no value yet.
	// stored reports whether the value was written.
	SetIfUnset(key string, value string) (stored bool, err error)
	// Get returns the value at key. The boolean return value indicates whether a value was found.
	Get(key string) (value string, loaded bool, err error)
	// Has reports whether a value exists at key.
	Has(key string) (loaded bool, err error)
	// Delete removes the value at key, keeping the keys below it.
	// deleted reports whether there was a value.
	Delete(key string) (deleted bool, err error)
	// DeleteTree removes the value at key and everything below it.
	DeleteTree(key string) (err error)
	// DeleteChildren removes everything below key. The value at key survives.
	DeleteChildren(key string) (err error)
	// List returns all values at or below prefix.
	List(prefix string) (kvs []KV, err error)
	// Children returns the names of the direct children of prefix.
	Children(prefix string) (names []string, err error)
	// Tree renders the keys at and below prefix as a tree.
	Tree(prefix string) (rendered string, err error)
	// Sub returns a store for the keys below prefix. It shares the data with this store:
	// writes through either store are visible in both.
	Sub(prefix string) (sub IStore, err error)
	// Prefix returns the key of this store's root within the store it was created from
	// ("" for a top level store).
	Prefix() string
	// GetInfo returns metadata about the tree underlying the store.
	GetInfo() (info tree.TreeInfo, err error)
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("StoreError (code %s): %s", e.Code, e.Msg)
}

// NewError creates a new store Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// CodeOf returns the RetCode carried by err, RetCSuccess for nil and RetCInternalError for
// errors of another type.
func CodeOf(err error) RetCode {
	if err == nil {
		return RetCSuccess
	}
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return RetCInternalError
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess          RetCode = iota // 0: Command executed successfully.
	RetCInternalError                   // 1: Command failed due to an internal error.
	RetCInvalidOperation                // 2: Invalid operation.
	RetCInvalidKey                      // 3: The key is malformed.
	RetCNotFound                        // 4: Nothing exists at the key.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "Success"
	case RetCInternalError:
		return "InternalError"
	case RetCInvalidOperation:
		return "InvalidOperation"
	case RetCInvalidKey:
		return "InvalidKey"
	case RetCNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}
