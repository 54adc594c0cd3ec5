//go:build nodocx

package docx

// This is the stub used when the "nodocx" build tag is set. The reader is
// still compiled, but OpenBytes refuses to parse and Available reports
// false, so callers can answer with a capability error instead of a parse
// failure:
//
//	go build -tags nodocx

// available reports that the DOCX parser was left out of this build.
const available = false
