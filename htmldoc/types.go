package htmldoc

// BlockKind identifies a block of normalized letter HTML.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockBanner
	BlockLetterhead
	BlockTitle
	BlockSalutation
	BlockBorrowerTable
	BlockPaymentTable
	BlockTable
)

var blockNames = map[BlockKind]string{
	BlockParagraph:     "paragraph",
	BlockBanner:        "banner",
	BlockLetterhead:    "letterhead",
	BlockTitle:         "title",
	BlockSalutation:    "salutation",
	BlockBorrowerTable: "borrower table",
	BlockPaymentTable:  "payment table",
	BlockTable:         "table",
}

func (k BlockKind) String() string {
	if name, ok := blockNames[k]; ok {
		return name
	}
	return "unknown"
}

// BannerKind identifies a diagnostic banner.
type BannerKind int

const (
	BannerNone BannerKind = iota
	// BannerCleanupOK reports that field cleanup removed every description.
	BannerCleanupOK
	// BannerCleanupFailed reports that a description survived field cleanup.
	BannerCleanupFailed
	// BannerError reports that normalization stopped and the output is the
	// unnormalized rendering.
	BannerError
)

// Element is one block read back from normalized HTML.
type Element struct {
	Kind   BlockKind
	Banner BannerKind
	Text   string
	Rows   [][]string // For tables
}

// Inspection summarizes the canonical blocks found in normalized HTML.
type Inspection struct {
	Banners        []BannerKind
	Letterhead     bool
	Title          bool
	Salutations    int
	BorrowerTables int
	PaymentTables  int
	Tables         int
	Paragraphs     int
}

// Failed reports whether normalization stopped on an error.
func (in Inspection) Failed() bool {
	for _, b := range in.Banners {
		if b == BannerError {
			return true
		}
	}
	return false
}

// ExtractOptions holds options for text and markdown extraction.
type ExtractOptions struct {
	KeepBanners bool // Include diagnostic banners in the output
}
