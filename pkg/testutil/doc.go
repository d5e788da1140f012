// Package testutil provides fixtures for gradlepatch tests.
//
// Key components:
//   - real filesystem helpers under t.TempDir(): CreateFile, CreateExecutable,
//     ReadFile, AssertFileContent, AssertNoFile
//   - NewMemoryFS: an afero backed types.FS preloaded with files
//   - IsolateState: points the XDG state home, where the log file goes, to a
//     temporary directory
//
// Helpers fail the test on setup errors, callers never check them.
package testutil
