package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a source file was loaded.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a byte-order mark was stripped during load.
	FileHadBOM
	// FileNormalizedCRLF indicates \r\n sequences were rewritten to \n.
	FileNormalizedCRLF
	// FileDecodedUTF16 indicates the content was transcoded from UTF-16.
	FileDecodedUTF16
)

// File captures metadata and content for a single source file.
// Content is always normalized UTF-8 with \n line endings.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
