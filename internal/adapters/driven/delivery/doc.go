// Package delivery provides batch sink implementations. A sink takes
// the finished batch text and its derived filename and hands them to a
// destination outside the engine: a directory on disk, or the system
// clipboard for pasting straight into a print utility.
package delivery
