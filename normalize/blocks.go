package normalize

// Canonical HTML blocks written into the normalized letter. Placeholders
// in {[...]} and {Func(...)} form are consumed by the downstream letter
// engine and are passed through untouched.
const (
	// Title is the centered, bold notice title.
	Title = `<div style="text-align: center"><b>Notice of Intention to Foreclose Mortgage</b></div>`

	// Salutation replaces every greeting paragraph.
	Salutation = "<div>Dear {[Salutation]},</div>\n<br>"

	// Letterhead replaces the header from the company tag down to the title.
	Letterhead = "<div>{Insert(H003 TagHeader)}</div>\n<br>\n" +
		"<div>{[L001]}</div>\n<br>\n" +
		"<div>{[mailingAddress]}</div>\n" +
		"<br><br><br><br><br>\n\n"

	// RETable is the borrower and property summary.
	RETable = `<div><table width="100%" style="border-collapse: collapse"><tbody><tr>` + "\n" +
		`  <td width="20%"><b>Borrower Name:</b></td>` + "\n" +
		`  <td>{[M558]}{If('{[M559]}'<>'')} and {[M559]}{End If}</td>` + "\n" +
		`  </tr><tr>` + "\n" +
		`  <td width="20%" valign="top"><b>Mailing Address:</b></td>` + "\n" +
		`  <td>{Compress({[M561]}|{[M562]}|{[M563]}{[M564]}{[M565]}{[M566]})}</td>` + "\n" +
		`  </tr><tr>` + "\n" +
		`  <td width="20%"><b>Mortgage Loan No:</b></td>` + "\n" +
		`  <td>{[M594]}</td>` + "\n" +
		`  </tr><tr>` + "\n" +
		`  <td width="20%"><b>Property Address:</b></td>` + "\n" +
		`  <td>{Compress({[M567]}|{[M583]})}</td>` + "\n" +
		`</tr></tbody></table>` + "\n" +
		"<br>\n"

	// PaymentTable summarizes the amounts due with generic money slots.
	PaymentTable = paymentTableHead +
		`  <td>{[M590]}</td>` + "\n" +
		`  </tr><tr>` + "\n" +
		`  <td width="50%">Net Payment Amount:</td>` + "\n" +
		`  <td>{Money}</td>` + "\n" +
		`  </tr><tr>` + "\n" +
		`  <td width="50%">Unpaid Late Charges:</td>` + "\n" +
		`  <td>{Money}</td>` + "\n" +
		`  </tr><tr>` + "\n" +
		`  <td width="50%">NSF & Other Fees:</td>` + "\n" +
		`  <td>{Money} + {Money}</td>` + "\n" +
		`  </tr><tr>` + "\n" +
		`  <td width="50%">Unapplied/Suspense Funds:</td>` + "\n" +
		`  <td>{Money}</td>` + "\n" +
		paymentTableTail

	// PaymentTableFields is PaymentTable bound to the payment merge fields.
	PaymentTableFields = paymentTableHead +
		`  <td>{[M590]}</td>` + "\n" +
		`  </tr><tr>` + "\n" +
		`  <td width="50%">Net Payment Amount:</td>` + "\n" +
		`  <td>{Money({[M591]})}</td>` + "\n" +
		`  </tr><tr>` + "\n" +
		`  <td width="50%">Unpaid Late Charges:</td>` + "\n" +
		`  <td>{Money({[M015]})}</td>` + "\n" +
		`  </tr><tr>` + "\n" +
		`  <td width="50%">NSF & Other Fees:</td>` + "\n" +
		`  <td>{Money({[M593]})} + {Money({[C004]})}</td>` + "\n" +
		`  </tr><tr>` + "\n" +
		`  <td width="50%">Unapplied/Suspense Funds:</td>` + "\n" +
		`  <td>{Money({[M013]})}</td>` + "\n" +
		paymentTableTail

	paymentTableHead = `<div><table width="100%" style="border-collapse: collapse"><tbody><tr>` + "\n" +
		`  <td width="50%">Number of Payments Due:</td>` + "\n"
	paymentTableTail = `</tr></tbody></table></div>` + "\n" + "<br>"

	bannerOK     = `<div style="color: green;">✓ Simple field cleanup worked!</div>`
	bannerFailed = `<div style="color: red;">❌ Simple field cleanup did NOT work</div>`
)
