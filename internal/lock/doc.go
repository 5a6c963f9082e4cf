// Package lock prevents two extsort runs from sorting the same source
// directory at once.
//
// The lock is an advisory flock(2) on a file in the system temp directory
// whose name is derived from the absolute source path, so nothing is written
// into the directory being sorted. It guards extsort against itself only;
// other programs touching the directories are not detected.
package lock
