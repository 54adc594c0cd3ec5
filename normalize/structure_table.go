package normalize

// structureRules rewrites the cleaned letter into the target layout. Some
// entries map a string to itself; they still count as a step of the
// structure loop.
var structureRules = []Replacement{
	// dollar amounts become Money() calls
	{`$<b>{[M591E6]}</b>`, `{Money({[M591]})}`},
	{`$<b>{[U026]} </b>`, `{Money({[U026]})}`},
	{`$<b>{[C001E6]} </b>+ <b>{[M585E6]}</b><b> + {[M029E6]}</b> – <b>{[M013E6]}</b>`, `{Math({[C001]} + {[M585]} + {[M029]} - {[M013]}|Money)}`},
	{`<b>{[C001E6]} </b>+ <b>{[M585E6]}</b> – <b>{[M013E6]}</b>`, `{Math({[C001]} + {[M585]} - {[M013]}|Money)}`},

	// payment table amounts
	{`<b>${[M591E6]}</b>`, `{Money({[M591]})}`},
	{`<b>${[M015E6]}</b>`, `{Money({[M015]})}`},
	{`<b>${[M593E6]} + ${[C004E6]}</b>`, `{Math({[M593]} + {[C004]}|Money)}`},
	{`<b>${[M013E6]}</b>`, `{Money({[M013]})}`},

	// E8 date suffixes are dropped
	{`{[L001E8]}`, `{[L001]}`},
	{`{[U027]}`, `{[U027]}`},
	{`{[L008E8]}`, `{[L008]}`},
	{`{[L011E8]}`, `{[L011]}`},
	{`{[M590]}`, `{[M590]}`},

	// descriptions
	{` (Delinquent Balance)`, ``},
	{` (Late Charge Fee)`, ``},
	{` (Today Plus 30 Days)`, ``},
	{` (Total Amount Due + Mtgr Rec Corp Adv Bal + Total Monthly Payment - Suspense Balance)`, ``},
	{` (Total Amount Due + Mtgr Rec Corp Adv Bal - Suspense Balance)`, ``},

	// descriptions that survived Money()/Math() wrapping
	{`{Money({[U026]})}(Late Charge Fee)`, `{Money({[U026]})}`},
	{`{Math({[C001]} + {[M585]} + {[M029]} - {[M013]}|Money)} (Total Amount Due <b>+</b> Mtgr Rec Corp Adv Bal + Total Monthly Payment <b>- </b>Suspense Balance)`, `{Math({[C001]} + {[M585]} + {[M029]} - {[M013]}|Money)}`},
	{`{Math({[C001]} + {[M585]} - {[M013]}|Money)} (Total Amount Due <b>+</b> Mtgr Rec Corp Adv Bal<b> - </b>Suspense Balance)`, `{Math({[C001]} + {[M585]} - {[M013]}|Money)}`},

	{`<b>${[M015E6]}</b>`, `{Money({[M015]})}`},
	{`{[M015E6]}`, `{Money({[M015]})}`},

	// total due
	{`<u><b>Total Due: $</b></u>{Math({[C001]} + {[M585]} - {[M013]}|Money)} (Total Amount Due <b>+</b> Mtgr Rec Corp Adv Bal<b> - </b>Suspense Balance)`, `<b>Total Due: {Math({[C001]} + {[M585]} - {[M013]}|Money)}</b>`},

	// demand notice expiry line
	{`<u><b>Demand Notice expires</b></u> <u><b>{[L011]} </b></u><u>(Today Plus 30 Days)</u><u>.</u>`, `<b>Demand Notice expires {[L011]}. Total Due: {Math({[C001]} + {[M585]} - {[M013]}|Money)}</b>`},

	// total due printed twice
	{`<b>Demand Notice expires {[L011]}. Total Due: {Math({[C001]} + {[M585]} - {[M013]}|Money)}</b> <u><b>Total Due: $</b></u>{Math({[C001]} + {[M585]} - {[M013]}|Money)}`, `<b>Demand Notice expires {[L011]}. Total Due: {Math({[C001]} + {[M585]} - {[M013]}|Money)}</b>`},

	// unpaid late charges
	{`<u><b>Unpaid Late Charges</b></u><u><b>:</b></u> <b>$</b><b>{Money({[M015]})}</b>`, `<u><b>Unpaid Late Charges:</b></u> {Money({[M015]})}`},

	// payment labels: bold outside underline
	{`<u><b>Number of Payments Due:</b></u>`, `<b><u>Number of Payments Due:</u></b>`},
	{`<u><b>Net Payment Amount:</b></u>`, `<b><u>Net Payment Amount:</u></b>`},
	{`<u><b>Unpaid Late Charges:</b></u>`, `<b><u>Unpaid Late Charges:</u></b>`},
	{`<u><b>NSF & Other Fees:</b></u>`, `<b><u>NSF &amp; Other Fees:</u></b>`},
	{`<u><b>Unapplied/Suspense Funds:</b></u>`, `<b><u>Unapplied/Suspense Funds:</u></b>`},

	// payment lines sit on consecutive rows without breaks
	{"<div><b><u>Number of Payments Due:</u></b> {[M590]}</div>\n<br>\n", "<div><b><u>Number of Payments Due:</u></b> {[M590]}</div>\n"},
	{"<div><b><u>Net Payment Amount:</u></b> {Money({[M591]})}</div>\n<br>\n", "<div><b><u>Net Payment Amount:</u></b> {Money({[M591]})}</div>\n"},
	{"<div><b><u>Unpaid Late Charges:</u></b> {Money({[M015]})}</div>\n<br>\n", "<div><b><u>Unpaid Late Charges:</u></b> {Money({[M015]})}</div>\n"},
	{"<div><b><u>NSF &amp; Other Fees:</u></b> {Math({[M593]} + {[C004]}|Money)}</div>\n<br>\n", "<div><b><u>NSF &amp; Other Fees:</u></b> {Math({[M593]} + {[C004]}|Money)}</div>\n"},

	{"<div><b><u>Number of Payments Due:</u></b> {[M590]}</div>\n<br>\n<div><b><u>Net Payment Amount:</u></b> {Money({[M591]})}</div>\n<br>\n<div><b><u>Unpaid Late Charges:</u></b> {Money({[M015]})}</div>\n<br>\n<div><b><u>NSF &amp; Other Fees:</u></b> {Math({[M593]} + {[C004]}|Money)}</div>\n<br>\n<div><b><u>Unapplied/Suspense Funds:</u></b> {Money({[M013]})}</div>", "<div><b><u>Number of Payments Due:</u></b> {[M590]}</div>\n<div><b><u>Net Payment Amount:</u></b> {Money({[M591]})}</div>\n<div><b><u>Unpaid Late Charges:</u></b> {Money({[M015]})}</div>\n<div><b><u>NSF &amp; Other Fees:</u></b> {Math({[M593]} + {[C004]}|Money)}</div>\n<div><b><u>Unapplied/Suspense Funds:</u></b> {Money({[M013]})}</div>"},

	// date and count fields are not bold in the target
	{`<b>{[U027]}</b>`, `{[U027]}`},
	{`<b>{[L008]}</b>`, `{[L008]}`},
	{`<b>{[L011]}</b>`, `{[L011]}`},
	{`<b>{[M590]}</b>`, `{[M590]}`},

	// wording
	{`which represents three (3) payments past due`, `which represents the past due amount`},

	// bullet table for the assistance options
	{`<div style="text-align: justify">There may be homeownership assistance options available, and you can reach a {[plsMatrix.CompanyShortName]} Loss Mitigation Specialist at {[plsMatrix.CSPhoneNumber]} to discuss these options.</div>`, "<div><table width=\"100%\" style=\"border-collapse: collapse\"><tbody><tr>\n  <td width=\"3%\" valign=\"top\" style=\"text-align: center\">•</td>\n  <td>There may be homeownership assistance options available, and you can reach a {[plsMatrix.CompanyShortName]} Loss Mitigation Specialist at {[plsMatrix.CSPhoneNumber]} to discuss these options.</td>\n  </tr><tr>\n  <td width=\"3%\" valign=\"top\" style=\"text-align: center\">•</td>\n  <td>Avoid Foreclosure Scams: Do your research, make sure you are working with a reputable company. http://www.consumer.ftc.gov/articles/0100-mortgage-relief-scams</td>\n</tr></tbody></table></div>"},

	// the scams line is already in the bullet table
	{`<div style="text-align: justify">Avoid Foreclosure Scams: Do your research, make sure you are working with a reputable company. </div>`, ``},
	{`<div style="text-align: justify">Avoid Foreclosure Scams: Do your research, make sure you are working with a reputable company.</div>`, ``},
	{"<div style=\"text-align: justify\">Avoid Foreclosure Scams: Do your research, make sure you are working with a reputable company.\n</div>", ``},

	// closing block
	{`<b>. </b></div>`, `.</div>`},
	{`<div style="text-align: justify">Sincerely,</div>`, `<div>Sincerely,</div>`},
	{`<div style="text-align: justify">Default Department</div>`, `<div>Default Department</div>`},
	{`<div style="text-align: justify">{[plsMatrix.CompanyLongName]}</div>`, `<div>{[plsMatrix.CompanyLongName]}</div>`},

	// line breaks after each block
	{`<div>{Insert(H003 TagHeader)}</div> <br> <div>{[L001]}</div> <br> <div>{[mailingAddress]}</div> <br><br><br><br><br>`, "<div>{Insert(H003 TagHeader)}</div>\n<br>\n<div>{[L001]}</div>\n<br>\n<div>{[mailingAddress]}</div>\n<br><br><br><br><br>\n"},
	{`<div style="text-align: center"><b>Notice of Intention to Foreclose Mortgage</b></div> <br>`, "<div style=\"text-align: center\"><b>Notice of Intention to Foreclose Mortgage</b></div>\n<br>\n"},
	{`<div><table width="100%" style="border-collapse: collapse"><tbody><tr> <td width="20%"><b>Borrower Name:</b></td> <td>{[M558]}{If('{[M559]}'<>\'\')} and {[M559]}{End If}</td> </tr><tr> <td width="20%" valign="top"><b>Mailing Address:</b></td> <td>{Compress({[M561]}|{[M562]}|{[M563]}{[M564]}{[M565]}{[M566]})}</td> </tr><tr> <td width="20%"><b>Mortgage Loan No:</b></td> <td>{[M594]}</td> </tr><tr> <td width="20%"><b>Property Address:</b></td> <td>{Compress({[M567]}|{[M583]})}</td> </tr></tbody></table> <br>`, "<div><table width=\"100%\" style=\"border-collapse: collapse\"><tbody><tr>\n  <td width=\"20%\"><b>Borrower Name:</b></td>\n  <td>{[M558]}{If('{[M559]}'<>\\'\\')} and {[M559]}{End If}</td>\n  </tr><tr>\n  <td width=\"20%\" valign=\"top\"><b>Mailing Address:</b></td>\n  <td>{Compress({[M561]}|{[M562]}|{[M563]}{[M564]}{[M565]}{[M566]})}</td>\n  </tr><tr>\n  <td width=\"20%\"><b>Mortgage Loan No:</b></td>\n  <td>{[M594]}</td>\n  </tr><tr>\n  <td width=\"20%\"><b>Property Address:</b></td>\n  <td>{Compress({[M567]}|{[M583]})}</td>\n</tr></tbody></table>\n<br>\n"},
	{`<div>Dear {[Salutation]},</div> <br>`, "<div>Dear {[Salutation]},</div>\n<br>\n"},
	{`<div>Notice is hereby given that you are in default in payment of the principal and interest due on the indebtedness represented by the above-described promissory note (the "Note"). According to its terms and conditions and in performance of the covenant contained in the certain Deed of Trust (the "Deed of Trust") securing payment of the Note to promptly pay when due the principal of and the interest on the indebtedness evidenced by the Note.</div> <br>`, "<div>Notice is hereby given that you are in default in payment of the principal and interest due on the indebtedness represented by the above-described promissory note (the \"Note\"). According to its terms and conditions and in performance of the covenant contained in the certain Deed of Trust (the \"Deed of Trust\") securing payment of the Note to promptly pay when due the principal of and the interest on the indebtedness evidenced by the Note.</div>\n<br>\n"},
	{`<div>To cure the aforesaid breach and default, you are required to pay {Money({[M591]})} which represents the past due amount. Please add an additional late charge of {Money({[U026]})} if paid after <b>{[U027]}</b>. This amount is only valid until <b>{[L008]}</b>.</div> <br>`, "<div>To cure the aforesaid breach and default, you are required to pay {Money({[M591]})} which represents the past due amount. Please add an additional late charge of {Money({[U026]})} if paid after {[U027]}. This amount is only valid until {[L008]}.</div>\n<br>\n"},
	{`<div>If payment is received after <b>{[L008]}</b>, you must pay the past due amount of {Math({[C001]} + {[M585]} + {[M029]} - {[M013]}|Money)} on or before <b>{[L011]}</b>, which is thirty-five days from the date of this notice.</div> <br>`, "<div>If payment is received after {[L008]}, you must pay the past due amount of {Math({[C001]} + {[M585]} + {[M029]} - {[M013]}|Money)} on or before {[L011]}, which is thirty-five days from the date of this notice.</div>\n<br>\n"},
	{`<div><b>Demand Notice expires {[L011]}. Total Due: {Math({[C001]} + {[M585]} - {[M013]}|Money)}</b></div> <br>`, "<div><b>Demand Notice expires {[L011]}. Total Due: {Math({[C001]} + {[M585]} - {[M013]}|Money)}</b></div>\n<br>\n"},
	{`<div><b><u>Number of Payments Due:</u></b> <b>{[M590]}</b></div> <br>`, "<div><b><u>Number of Payments Due:</u></b> {[M590]}</div>\n"},
	{`<div><b><u>Net Payment Amount:</u></b> {Money({[M591]})}</div> <br>`, "<div><b><u>Net Payment Amount:</u></b> {Money({[M591]})}</div>\n"},
	{`<div><b><u>Unpaid Late Charges:</u></b> {Money({[M015]})}</div> <br>`, "<div><b><u>Unpaid Late Charges:</u></b> {Money({[M015]})}</div>\n"},
	{`<div><b><u>NSF &amp; Other Fees:</u></b> {Math({[M593]} + {[C004]}|Money)}</div> <br>`, "<div><b><u>NSF &amp; Other Fees:</u></b> {Math({[M593]} + {[C004]}|Money)}</div>\n"},
	{`<div><b><u>Unapplied/Suspense Funds:</u></b> {Money({[M013]})}</div> <br>`, "<div><b><u>Unapplied/Suspense Funds:</u></b> {Money({[M013]})}</div>\n<br>\n"},

	{`<div>If you do not cure the default within thirty (30) days, we intend to exercise our right to accelerate the mortgage payments. This means that whatever is owed on the original amount borrowed will be considered due immediately and you may lose the chance to pay off the original mortgage in monthly installments. If full payment of the amount of default is not made within thirty (30) days, we also intend to instruct our attorneys to start a lawsuit to foreclose your mortgaged property. If the mortgage is foreclosed your mortgaged property will be sold to pay off the mortgage debt. If we refer your case to our attorneys, but you cure the default before they begin legal proceedings against you, you will still have to pay the reasonable attorney's fees, actually incurred. However, if legal proceedings are started against you, you will have to pay the reasonable attorney's fees within allowable fees and costs. Any attorney's fees will be added to whatever you owe us, which may also include our reasonable costs. If you cure the default within the thirty-day period, you will not be required to pay attorney's fees. </div> <br>`, "<div>If you do not cure the default within thirty (30) days, we intend to exercise our right to accelerate the mortgage payments. This means that whatever is owed on the original amount borrowed will be considered due immediately and you may lose the chance to pay off the original mortgage in monthly installments. If full payment of the amount of default is not made within thirty (30) days, we also intend to instruct our attorneys to start a lawsuit to foreclose your mortgaged property. If the mortgage is foreclosed your mortgaged property will be sold to pay off the mortgage debt. If we refer your case to our attorneys, but you cure the default before they begin legal proceedings against you, you will still have to pay the reasonable attorney's fees, actually incurred.  However, if legal proceedings are started against you, you will have to pay the reasonable attorney's fees within allowable fees and costs. Any attorney's fees will be added to whatever you owe us, which may also include our reasonable costs. If you cure the default within the thirty-day period, you will not be required to pay attorney's fees.</div>\n<br>\n"},
	{`<div>If you have not cured the default within the thirty-day period and foreclosure proceedings have begun, you still have the right to cure the default and prevent the sale at any time up to one hour before the foreclosure sale. You may do so by paying the total amount of the unpaid monthly payments plus any late or other charges then due, as well as the reasonable attorney's fees and costs connected with the foreclosure sale and perform any other requirements under the mortgage. A notice of the date of the foreclosure sale will be sent to you before the sale. Of course, the amount needed to cure the default will increase the longer you wait.</div> <br>`, "<div>If you have not cured the default within the thirty-day period and foreclosure proceedings have begun, you still have the right to cure the default and prevent the sale at any time up to one hour before the foreclosure sale. You may do so by paying the total amount of the unpaid monthly payments plus any late or other charges then due, as well as the reasonable attorney's fees and costs connected with the foreclosure sale and perform any other requirements under the mortgage. A notice of the date of the foreclosure sale will be sent to you before the sale. Of course, the amount needed to cure the default will increase the longer you wait.</div>\n<br>\n"},
	{`<div><b>You may find out at any time exactly what the required payment will be by calling us at the following number: </b><b>{[plsMatrix.CSPhoneNumber]}</b><b> or </b><b>{[plsMatrix.SPOCContactEmail]}</b><b>. This payment must be in cash, cashier's check, certified check or money order and made payable to us at </b><b>{[plsMatrix.PayoffAddr1]}, {[plsMatrix.PayoffAddr2]}.</b></div> <br>`, "<div><b>You may find out at any time exactly what the required payment will be by calling us at the following number: {[plsMatrix.CSPhoneNumber]} or {[plsMatrix.SPOCContactEmail]}. This payment must be in cash, cashier's check, certified check or money order and made payable to us at {[plsMatrix.PayoffAddr1]}, {[plsMatrix.PayoffAddr2]}.</b></div>\n<br>\n"},
	{`<div>You should realize that a foreclosure sale will end your ownership of the mortgaged property and your right to remain in it. If you continue to live in the property after the foreclosure sale, a lawsuit could be started to evict you. </div> <br>`, "<div>You should realize that a foreclosure sale will end your ownership of the mortgaged property and your right to remain in it. If you continue to live in the property after the foreclosure sale, a lawsuit could be started to evict you.</div>\n<br>\n"},
	{`<div>Please consider the following:</div> <br>`, "<div>Please consider the following:</div>\n<br>\n"},
	{`<div>You should contact a HUD Counselor at HUD's National Servicing Center at (877) 622-8525/TDD (800) 877-8339 or the Homeownership Preservation Foundation (888-995-HOPE) to speak with counselors who can provide assistance and may be able to help you avoid foreclosure. </div> <br>`, "<div>You should contact a HUD Counselor at HUD's National Servicing Center at (877) 622-8525/TDD (800) 877-8339 or the Homeownership Preservation Foundation (888-995-HOPE) to speak with counselors who can provide assistance and may be able to help you avoid foreclosure.</div>\n"},
	{`<div><table width="100%" style="border-collapse: collapse"><tbody><tr> <td width="3%" valign="top" style="text-align: center">•</td> <td>There may be homeownership assistance options available, and you can reach a {[plsMatrix.CompanyShortName]} Loss Mitigation Specialist at {[plsMatrix.CSPhoneNumber]} to discuss these options.</td> </tr><tr> <td width="3%" valign="top" style="text-align: center">•</td> <td>Avoid Foreclosure Scams: Do your research, make sure you are working with a reputable company. http://www.consumer.ftc.gov/articles/0100-mortgage-relief-scams</td> </tr></tbody></table></div> <br> <br>`, "<div><table width=\"100%\" style=\"border-collapse: collapse\"><tbody><tr>\n  <td width=\"3%\" valign=\"top\" style=\"text-align: center\">•</td>\n  <td>There may be homeownership assistance options available, and you can reach a {[plsMatrix.CompanyShortName]} Loss Mitigation Specialist at {[plsMatrix.CSPhoneNumber]} to discuss these options.</td>\n  </tr><tr>\n  <td width=\"3%\" valign=\"top\" style=\"text-align: center\">•</td>\n  <td>Avoid Foreclosure Scams: Do your research, make sure you are working with a reputable company. http://www.consumer.ftc.gov/articles/0100-mortgage-relief-scams</td>\n</tr></tbody></table></div>\n<br>\n"},
	{`<div style="text-align: justify">If you pay the past due amount, and any additional monthly payments, late charges or fees that may become due between the date of this notice and the date when you make your payment, your account will be considered up-to-date, and you can continue to make your regular monthly payments.</div> <br>`, "<div>If you pay the past due amount, and any additional monthly payments, late charges or fees that may become due between the date of this notice and the date when you make your payment, your account will be considered up-to-date, and you can continue to make your regular monthly payments.</div>\n<br>\n"},
	{`<div>Sincerely,</div> <br>`, "<div>Sincerely,</div>\n<br>\n"},
	{`<div>Default Department</div> <br>`, "<div>Default Department</div>\n"},
	{`<div>{[plsMatrix.CompanyLongName]}</div>`, `<div>{[plsMatrix.CompanyLongName]}</div>`},

	// letter library boilerplate
	{`<div style="text-align: justify">(<u><b>"OR"</b></u> If <b>{[M956]}</b>)</div>`, ``},
	{`<div style="text-align: justify">(see "Additional Borrowers/Co-Borrowers" on Letter Library Business Rules for Additional Addresses in BKFS) </div>`, ``},
	{`<div style="text-align: justify; font-size: 11pt">(see "SII Confirmed" on Letter Library Business Rules for Additional Addresses in BKFS)</div>`, ``},

	// cap runs of breaks at five
	{"<br>\n<br>\n<br>\n<br>\n<br>\n<br>\n<br>", `<br><br><br><br><br>`},
	{"<br>\n<br>\n<br>\n<br>\n<br>\n<br>", `<br><br><br><br><br>`},
	{"<br>\n<br>\n<br>\n<br>\n<br>", `<br><br><br><br><br>`},
}
