package normalize

var paymentRules = []Replacement{
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
	{` (Foreign Address Indicator = 1)`, ``},
	{` (Foreign Country Code)`, ``},
	{` (Foreign Postal Code)`, ``},
	{` (Loan Number – No Dash)`, ``},
	{` (Property Line 1/Street Address)`, ``},
	{` (New Property Unit Number)`, ``},
	{` (New Property Line 2/City State and Zip Code)`, ``},
	{` (Additional Mailing Address)`, ``},
	{` (Mailing Street Address)`, ``},
	{` (Mailing City), (State), (5-Digit Zip), (4-Digit Zip)`, ``},
	{` (New Bill Line 1/ Mortgagor Name)`, ``},
	{` (New Bill Line 2/Second Mortgagor)`, ``},
	{` (New Bill Line 3/Third Mortgagor)`, ``},
	{` (System Date)`, ``},
	{` (Company Address Line 1)`, ``},
	{` (Company Address Line 2)`, ``},
	{` (Company Address Line 3)`, ``},
	{` (Delinquent Payment Count)`, ``},
	{` (Accrued Late Charge Bal)`, ``},
	{` (NSF Balance + Other Fees)`, ``},
	{` (Suspense Balance)`, ``},
}
