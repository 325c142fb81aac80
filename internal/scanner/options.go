package scanner

import (
	"reflow/internal/source"
)

// Reporter is a thin sink for scan notices, so the scanner does not depend on
// any diagnostics layer. The scanner only calls it; formatting is up to the
// caller. Notices are informational: scanning always continues and never fails.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Notice kinds passed to Reporter.Report.
const (
	NoticeUnterminatedString  = "unterminated-string"
	NoticeUnterminatedComment = "unterminated-block-comment"
	NoticeUnterminatedPattern = "unterminated-pattern"
)

type Options struct {
	Reporter Reporter // may be nil; notices are then dropped
}

func (s *Scanner) report(kind string, sp source.Span, msg string) {
	if s.opts.Reporter != nil {
		s.opts.Reporter.Report(kind, sp, msg)
	}
}
