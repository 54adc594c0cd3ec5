package normalize

// fieldRules strips the human-readable descriptions the letter library
// prints after each merge field.
var fieldRules = []Replacement{
	// descriptions trailing a placeholder inside a plain div
	{`<div>{[tagHeader]}(Company Address Line 1)</div>`, `<div>{[tagHeader]}</div>`},
	{`<div>{[tagHeader]}(Company Address Line 2)</div>`, `<div>{[tagHeader]}</div>`},
	{`<div>{[tagHeader]}(Company Address Line 3)</div>`, `<div>{[tagHeader]}</div>`},
	{`<div>{[L001]} (System Date)</div>`, `<div>{[L001]}</div>`},
	{`<div>{[M558]}(New Bill Line 1/ Mortgagor Name)</div>`, `<div>{[M558]}</div>`},
	{`<div>{[M559]} (New Bill Line 2/Second Mortgagor)</div>`, `<div>{[M559]}</div>`},
	{`<div>{[M560]} (New Bill Line 3/Third Mortgagor)</div>`, `<div>{[M560]}</div>`},
	{`<div>{[M561]} (Additional Mailing Address)</div>`, `<div>{[M561]}</div>`},
	{`<div>{[M562]} (Mailing Street Address)</div>`, `<div>{[M562]}</div>`},
	{`<div>{[M594]}(Loan Number – No Dash)</div>`, `<div>{[M594]}</div>`},
	{`<div>{[M567]} (Property Line 1/Street Address)</div>`, `<div>{[M567]}</div>`},
	{`<div>{[M583]}(New Property Unit Number)</div>`, `<div>{[M583]}</div>`},
	{`<div>{[M568]} (New Property Line 2/City State and Zip Code)</div>`, `<div>{[M568]}</div>`},
	{`<div>{[M590]}(Delinquent Payment Count)</div>`, `<div>{[M590]}</div>`},
	{`<div>{[U027]} (Late Fee Date)</div>`, `<div>{[U027]}</div>`},
	{`<div>{[L008E8]} (Last Day This Month)</div>`, `<div>{[L008E8]}</div>`},
	{`<div>{[L011E8]} (Today Plus 30 Days)</div>`, `<div>{[L011E8]}</div>`},
	{`<div>{[M956]} (Foreign Address Indicator = 1)</div>`, `<div>{[M956]}</div>`},
	{`<div>{[M928]} (Foreign Country Code)</div>`, `<div>{[M928]}</div>`},
	{`<div>{[M929]} (Foreign Postal Code)</div>`, `<div>{[M929]}</div>`},
	{`<div>{[U026]}(Late Charge Fee)</div>`, `<div>{[U026]}</div>`},
	{`<div>{[M591E6]}(Delinquent Balance)</div>`, `<div>{[M591E6]}</div>`},
	{`<div>{[C001E6]}(Total Amount Due</div>`, `<div>{[C001E6]}</div>`},
	{`<div>{[M585E6]}(Mtgr Rec Corp Adv Bal</div>`, `<div>{[M585E6]}</div>`},
	{`<div>{[M029E6]}(Total Monthly Payment</div>`, `<div>{[M029E6]}</div>`},
	{`<div>{[M013E6]}(Suspense Balance</div>`, `<div>{[M013E6]}</div>`},
	{`<div>{[M015E6]}(Accrued Late Charge Bal)</div>`, `<div>{[M015E6]}</div>`},
	{`<div>{[M593E6]}(NSF Balance</div>`, `<div>{[M593E6]}</div>`},
	{`<div>{[C004E6]}(Other Fees)</div>`, `<div>{[C004E6]}</div>`},

	// bold-wrapped loan and property lines
	{`<div><b>Mortgage Loan No:{[M594]}(Loan Number – No Dash)</b></div>`, `<div><b>Mortgage Loan No:{[M594]}</b></div>`},
	{`<div><b>Property Address:{[M567]} (Property Line 1/Street Address)</b></div>`, `<div><b>Property Address:{[M567]}</b></div>`},
	{"<div><b>                                \t{[M583]}(New Property Unit Number)</b></div>", "<div><b>                                \t{[M583]}</b></div>"},
	{"<div><b>                            \t\t{[M568]}(New Property Line 2/City State and Zip Code)</b></div>", "<div><b>                            \t\t{[M568]}</b></div>"},

	// payment lines whose bold tags were split across runs
	{`<div><u><b>Number of Payments Due:</u><u></u>{[M590]}(Delinquent Payment Count)</div>`, `<div><u><b>Number of Payments Due:</u><u></u>{[M590]}</div>`},
	{`<div><u><b>Net Payment Amount</u><u><b>$</u>{[M591E6]}(Delinquent Balance)</div>`, `<div><u><b>Net Payment Amount</u><u><b>$</u>{[M591E6]}</div>`},
	{`<div><u><b>Unpaid Late Charges</u><u><b>:</u><u></u><b>${[M015E6]}(Accrued Late Charge Bal)</b></div>`, `<div><u><b>Unpaid Late Charges</u><u><b>:</u><u></u><b>${[M015E6]}</b></div>`},
	{`<div><u><b>NSF & Other Fees: $</u><b>{[M593E6]}+ <b>{[C004E6]}(NSF Balance + Other Fees)</b></div>`, `<div><u><b>NSF & Other Fees: $</u><b>{[M593E6]}+ <b>{[C004E6]}</b></div>`},
	{`<div><u><b>Unapplied/Suspense Funds:</u><b>${[M013E6]}(Suspense Balance)</b></div>`, `<div><u><b>Unapplied/Suspense Funds:</u><b>${[M013E6]}</b></div>`},

	// bare placeholders outside any div
	{`{[tagHeader]}(Company Address Line 1)`, `{[tagHeader]}`},
	{`{[tagHeader]}(Company Address Line 2)`, `{[tagHeader]}`},
	{`{[tagHeader]}(Company Address Line 3)`, `{[tagHeader]}`},
	{`{[L001]} (System Date)`, `{[L001]}`},
	{`{[M558]}(New Bill Line 1/ Mortgagor Name)`, `{[M558]}`},
	{`{[M559]} (New Bill Line 2/Second Mortgagor)`, `{[M559]}`},
	{`{[M560]} (New Bill Line 3/Third Mortgagor)`, `{[M560]}`},
	{`{[M561]} (Additional Mailing Address)`, `{[M561]}`},
	{`{[M562]} (Mailing Street Address)`, `{[M562]}`},
	{`{[M594]}(Loan Number – No Dash)`, `{[M594]}`},
	{`{[M567]} (Property Line 1/Street Address)`, `{[M567]}`},
	{`{[M583]}(New Property Unit Number)`, `{[M583]}`},
	{`{[M568]} (New Property Line 2/City State and Zip Code)`, `{[M568]}`},
	{`{[M590]}(Delinquent Payment Count)`, `{[M590]}`},
	{`{[U027]} (Late Fee Date)`, `{[U027]}`},
	{`{[L008E8]} (Last Day This Month)`, `{[L008E8]}`},
	{`{[L011E8]} (Today Plus 30 Days)`, `{[L011E8]}`},
	{`{[M956]} (Foreign Address Indicator = 1)`, `{[M956]}`},
	{`{[M928]} (Foreign Country Code)`, `{[M928]}`},
	{`{[M929]} (Foreign Postal Code)`, `{[M929]}`},
	{`{[U026]}(Late Charge Fee)`, `{[U026]}`},
	{`{[M591E6]}(Delinquent Balance)`, `{[M591E6]}`},
	{`{[C001E6]}(Total Amount Due`, `{[C001E6]}`},
	{`{[M585E6]}(Mtgr Rec Corp Adv Bal`, `{[M585E6]}`},
	{`{[M029E6]}(Total Monthly Payment`, `{[M029E6]}`},
	{`{[M013E6]}(Suspense Balance`, `{[M013E6]}`},
	{`{[M015E6]}(Accrued Late Charge Bal)`, `{[M015E6]}`},
	{`{[M593E6]}(NSF Balance`, `{[M593E6]}`},
	{`{[C004E6]}(Other Fees)`, `{[C004E6]}`},

	// header fields rendered in justified bold runs
	{`<div style="text-align: justify"><b>{[H002]} </b>(Company Address Line 1)</div>`, `<div style="text-align: justify"><b>{[H002]} </b></div>`},
	{`<div style="text-align: justify"><b>{[H003]} </b>(Company Address Line 2)</div>`, `<div style="text-align: justify"><b>{[H003]} </b></div>`},
	{`<div style="text-align: justify"><b>{[H004]} </b>(Company Address Line 3)</div>`, `<div style="text-align: justify"><b>{[H004]} </b></div>`},
	{`<div style="text-align: justify"><b>{[L001E8]}</b> (System Date)</div>`, `<div style="text-align: justify"><b>{[L001E8]}</b></div>`},

	// borrower names
	{`<div style="text-align: justify"><b>{[M558]} </b>(New Bill Line 1/ Mortgagor Name)</div>`, `<div style="text-align: justify"><b>{[M558]} </b></div>`},
	{`<div style="text-align: justify"><b>{[M559]}</b> (New Bill Line 2/Second Mortgagor)</div>`, `<div style="text-align: justify"><b>{[M559]}</b></div>`},
	{`<div style="text-align: justify"><b>{[M560]}</b> (New Bill Line 3/Third Mortgagor)</div>`, `<div style="text-align: justify"><b>{[M560]}</b></div>`},

	// mailing address
	{`<div style="text-align: justify"><b>{[M561]}</b> (Additional Mailing Address)</div>`, `<div style="text-align: justify"><b>{[M561]}</b></div>`},
	{`<div style="text-align: justify"><b>{[M562]}</b> (Mailing Street Address)</div>`, `<div style="text-align: justify"><b>{[M562]}</b></div>`},
	{`<div style="text-align: justify"><b>{[M563]} {[M564]} {[M565]} </b><b>{[M566]}</b> (Mailing City), (State), (5-Digit Zip), (4-Digit Zip)</div>`, `<div style="text-align: justify"><b>{[M563]} {[M564]} {[M565]} </b><b>{[M566]}</b></div>`},

	// foreign address
	{`<div style="text-align: justify"><b>{[M956]}</b> (Foreign Address Indicator = 1)</div>`, `<div style="text-align: justify"><b>{[M956]}</b></div>`},
	{`<div style="text-align: justify"><b>{[M928]}</b> (Foreign Country Code)</div>`, `<div style="text-align: justify"><b>{[M928]}</b></div>`},
	{`<div style="text-align: justify; font-size: 11pt"><b>{[M929]}</b> (Foreign Postal Code)</div>`, `<div style="text-align: justify; font-size: 11pt"><b>{[M929]}</b></div>`},

	// loan number and property address split into tab-separated runs
	{"<div><b>Mortgage Loan No:</b><b>\t</b><b>{</b><b>[M594]</b><b>}</b><b> </b>(Loan Number – No Dash)</div>", "<div><b>Mortgage Loan No:</b><b>\t</b><b>{</b><b>[M594]</b><b>}</b></div>"},
	{"<div><b>Property Address:</b><b>\t</b><b>{[M567]}</b> (Property Line 1/Street Address)</div>", "<div><b>Property Address:</b><b>\t</b><b>{[M567]}</b></div>"},
	{"<div><b>                                </b><b>\t</b><b>{[M583]} </b>(New Property Unit Number)</div>", "<div><b>                                </b><b>\t</b><b>{[M583]} </b></div>"},
	{"<div><b>                            </b><b>\t</b><b>\t</b><b>{[M568]} </b>(New Property Line 2/City State and Zip Code)</div>", "<div><b>                            </b><b>\t</b><b>\t</b><b>{[M568]} </b></div>"},

	// payment lines
	{`<div><u><b>Number of Payments Due:</b></u><u><b> </b></u><b>{[M590]}</b><b> </b>(Delinquent Payment Count)</div>`, `<div><u><b>Number of Payments Due:</b></u><u><b> </b></u><b>{[M590]}</b></div>`},
	{`<div><u><b>Net Payment Amount </b></u><u><b>$</b></u><b>{[M591E6]}</b><b> </b>(Delinquent Balance)</div>`, `<div><u><b>Net Payment Amount </b></u><u><b>$</b></u><b>{[M591E6]}</b></div>`},
	{`<div><u><b>Unpaid Late Charges</b></u><u><b>:</b></u><u><b> </b></u><b>$</b><b>{[M015E6]}</b><b> </b>(Accrued Late Charge Bal)</div>`, `<div><u><b>Unpaid Late Charges</b></u><u><b>:</b></u><u><b> </b></u><b>$</b><b>{[M015E6]}</b></div>`},
	{`<div><u><b>NSF & Other Fees: $</b></u><b>{[M593E6]} </b>+ <b>{[C004E6]} </b>(NSF Balance + Other Fees)</div>`, `<div><u><b>NSF & Other Fees: $</b></u><b>{[M593E6]} </b>+ <b>{[C004E6]} </b></div>`},
	{`<div><u><b>Unapplied/Suspense Funds: </b></u><b>$</b><b>{[M013E6]} </b>(Suspense Balance)</div>`, `<div><u><b>Unapplied/Suspense Funds: </b></u><b>$</b><b>{[M013E6]} </b></div>`},

	// contact fields live in the plsMatrix namespace
	{`{[CSPhoneNumber]}`, `{[plsMatrix.CSPhoneNumber]}`},
	{`{[SPOCContactEmail]}`, `{[plsMatrix.SPOCContactEmail]}`},
	{`{[PayoffAddr1]}`, `{[plsMatrix.PayoffAddr1]}`},
	{`{[PayoffAddr2]}`, `{[plsMatrix.PayoffAddr2]}`},
	{`{[CompanyShortName]}`, `{[plsMatrix.CompanyShortName]}`},
	{`{[CompanyLongName]}`, `{[plsMatrix.CompanyLongName]}`},

	// any description left behind with a leading space
	{` (Company Address Line 1)`, ``},
	{` (Company Address Line 2)`, ``},
	{` (Company Address Line 3)`, ``},
	{` (System Date)`, ``},
	{` (New Bill Line 1/ Mortgagor Name)`, ``},
	{` (New Bill Line 2/Second Mortgagor)`, ``},
	{` (New Bill Line 3/Third Mortgagor)`, ``},
	{` (Additional Mailing Address)`, ``},
	{` (Mailing Street Address)`, ``},
	{` (Mailing City), (State), (5-Digit Zip), (4-Digit Zip)`, ``},
	{` (Foreign Address Indicator = 1)`, ``},
	{` (Foreign Country Code)`, ``},
	{` (Foreign Postal Code)`, ``},
	{` (Loan Number – No Dash)`, ``},
	{` (Property Line 1/Street Address)`, ``},
	{` (New Property Unit Number)`, ``},
	{` (New Property Line 2/City State and Zip Code)`, ``},
	{` (Delinquent Balance)`, ``},
	{` (Late Charge Fee)`, ``},
	{` (Late Fee Date)`, ``},
	{` (Last Day This Month)`, ``},
	{` (Today Plus 30 Days)`, ``},
	{` (Total Amount Due + Mtgr Rec Corp Adv Bal + Total Monthly Payment - Suspense Balance)`, ``},
	{` (Delinquent Payment Count)`, ``},
	{` (Accrued Late Charge Bal)`, ``},
	{` (NSF Balance + Other Fees)`, ``},
	{` (Suspense Balance)`, ``},
}
