package driver

import (
	"fmt"

	"reflow/internal/scanner"
	"reflow/internal/segment"
	"reflow/internal/source"
)

// Notice is a scan observation (an unterminated literal) surfaced to the
// caller. Notices are informational: the scan still produced a full,
// lossless partition of the input.
type Notice struct {
	Kind string
	Span source.Span
	Msg  string
}

type noticeCollector struct {
	notices []Notice
}

func (r *noticeCollector) Report(kind string, span source.Span, msg string) {
	r.notices = append(r.notices, Notice{Kind: kind, Span: span, Msg: msg})
}

// ScanResult holds the classified segments of a single file.
type ScanResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Segments []segment.Segment
	Notices  []Notice
}

// ScanFile loads and partitions a file from disk.
func ScanFile(path string) (*ScanResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return scanLoaded(fileSet, fileID), nil
}

// ScanVirtual partitions in-memory content (stdin, tests) under a display name.
func ScanVirtual(name string, content []byte) *ScanResult {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, content)
	return scanLoaded(fileSet, fileID)
}

func scanLoaded(fileSet *source.FileSet, fileID source.FileID) *ScanResult {
	file := fileSet.Get(fileID)
	reporter := &noticeCollector{}
	sc := scanner.New(file, scanner.Options{Reporter: reporter})
	return &ScanResult{
		FileSet:  fileSet,
		File:     file,
		Segments: sc.Scan(),
		Notices:  reporter.notices,
	}
}
