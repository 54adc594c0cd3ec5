package normalize

// TitleInsert places the notice title and the borrower table before the
// borrower block.
func TitleInsert() Pass {
	return NewInsertBefore("title", `<div><b>Borrower Name:</b>`, Title+"\n<br>\n"+RETable)
}
