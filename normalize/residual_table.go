package normalize

var residualRules = []Replacement{
	// payment descriptions
	{` (Delinquent Balance)`, ``},
	{` (Late Charge Fee)`, ``},
	{` (Late Fee Date)`, ``},
	{` (Last Day This Month)`, ``},
	{` (Today Plus 30 Days)`, ``},
	{` (Total Amount Due + Mtgr Rec Corp Adv Bal + Total Monthly Payment - Suspense Balance)`, ``},
	{` (Total Amount Due + Mtgr Rec Corp Adv Bal - Suspense Balance)`, ``},
	{` (Mortgagor Name)`, ``},
	{` (Second Mortgagor)`, ``},
	{` (Mailing City), (State), (5-Digit Zip)`, ``},
	{` (4-Digit Zip)`, ``},

	// city/state/zip remnants in 10pt spans
	{`<span style="font-size: 10pt">(Mailing City), (State), (5-Digit Zip)</span><span style="font-size: 10pt">,</span>`, ``},
	{`<span style="font-size: 10pt">, (4-Digit Zip)</span>`, ``},

	// borrower name and loan number split across bold runs
	{`<b>{</b><b>[M558]}</b> and <b>{</b><b>[M559]}</b>`, `{[M558]} and {[M559]}`},
	{`<b>{</b><b>[M594]</b><b>}</b>`, `{[M594]}`},

	// co-borrower and non-borrower boilerplate from the letter library
	{`<div style="text-align: justify">(see "Additional Borrowers/Co-Borrowers" on Letter Library Business Rules for Additional Addresses in BKFS) </div>`, ``},
	{`<div style="text-align: justify">Co-borrower Name 1</div>`, ``},
	{`<div style="text-align: justify">Co-borrower Name 2</div>`, ``},
	{`<div style="text-align: justify">Co-borrower Address Line 1</div>`, ``},
	{`<div style="text-align: justify">Co-borrower Address Line 2</div>`, ``},
	{`<div style="text-align: justify">Co-borrower Street</div>`, ``},
	{`<div style="text-align: justify">Co-borrower City, Co-borrower State, Co-borrower Zip Code, Co-borrower Zip Code Suffix</div>`, ``},
	{`<div style="text-align: justify; font-size: 11pt">(see "SII Confirmed" on Letter Library Business Rules for Additional Addresses in BKFS)</div>`, ``},
	{`<div style="text-align: justify">Non-borrower Name</div>`, ``},
	{`<div style="text-align: justify">Non-borrower Address Line 1</div>`, ``},
	{`<div style="text-align: justify">Non-borrower Address Line 2</div>`, ``},
	{`<div style="text-align: justify">Non-borrower Address Line 3</div>`, ``},
	{`<div style="text-align: justify">Non-borrower Street</div>`, ``},

	// foreign address conditional
	{`<div style="text-align: justify">(<u><b>"OR"</b></u> If <b>{[M956]}</b>)</div>`, ``},

	// business-rule references (repeated on purpose)
	{`<div style="text-align: justify">(see "Additional Borrowers/Co-Borrowers" on Letter Library Business Rules for Additional Addresses in BKFS) </div>`, ``},
	{`<div style="text-align: justify; font-size: 11pt">(see "SII Confirmed" on Letter Library Business Rules for Additional Addresses in BKFS)</div>`, ``},

	// payment descriptions again; earlier rules can expose new ones
	{` (Delinquent Balance)`, ``},
	{` (Late Charge Fee)`, ``},
	{` (Late Fee Date)`, ``},
	{` (Last Day This Month)`, ``},
	{` (Today Plus 30 Days)`, ``},
	{` (Total Amount Due + Mtgr Rec Corp Adv Bal + Total Monthly Payment - Suspense Balance)`, ``},
	{` (Total Amount Due + Mtgr Rec Corp Adv Bal - Suspense Balance)`, ``},

	// demand notice and payment labels
	{`<u><b>Demand Notice expires</b></u> <u><b>{[L011E8]} </b></u><u>(Today Plus 30 Days)</u><u>.</u> <u><b>Total Due: $</b></u><b>{[C001E6]} </b>+ <b>{[M585E6]}</b> – <b>{[M013E6]}</b> (Total Amount Due <b>+</b> Mtgr Rec Corp Adv Bal<b> - </b>Suspense Balance)`, `<u><b>Demand Notice expires {[L011E8]}. Total Due: $</b></u><b>{[C001E6]} </b>+ <b>{[M585E6]}</b> – <b>{[M013E6]}</b>`},
	{`<u><b>Number of Payments Due:</b></u> <b>{[M590]}</b>`, `<u><b>Number of Payments Due:</b></u> <b>{[M590]}</b>`},
	{`<u><b>Net Payment Amount </b></u><u><b>$</b></u><b>{[M591E6]}</b>`, `<u><b>Net Payment Amount:</b></u> <b>${[M591E6]}</b>`},
	{`<u><b>Unpaid Late Charges</b></u><u><b>:</b></u> <b>$</b><b>{[M015E6]}</b>`, `<u><b>Unpaid Late Charges:</b></u> <b>${[M015E6]}</b>`},
	{`<u><b>NSF & Other Fees: $</b></u><b>{[M593E6]} </b>+ <b>{[C004E6]} </b>`, `<u><b>NSF & Other Fees:</b></u> <b>${[M593E6]} + ${[C004E6]}</b>`},
	{`<u><b>Unapplied/Suspense Funds: </b></u><b>$</b><b>{[M013E6]} </b>`, `<u><b>Unapplied/Suspense Funds:</b></u> <b>${[M013E6]}</b>`},

	// empty and whitespace-only formatting tags
	{`<b> </b>`, ` `},
	{`<b></b>`, ``},
	{`<u><b> </b></u>`, ` `},
	{`<u><b></b></u>`, ``},
	{`<u> </u>`, ` `},
	{`<u></u>`, ``},
}
