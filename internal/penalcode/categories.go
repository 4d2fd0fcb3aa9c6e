package penalcode

// Category groups arrest codes for browsing.
type Category struct {
	Name  string   `json:"name"`
	Codes []string `json:"codes"`
}

// Categories lists the browsing groups for the arrest table, in display order.
var Categories = []Category{
	{Name: "Criminal Threats & Assault", Codes: []string{"(1)01", "(1)02", "(1)03"}},
	{Name: "Battery & Violence", Codes: []string{"(1)04", "(1)05", "(1)11", "(1)12"}},
	{Name: "Murder & Manslaughter", Codes: []string{"(1)06", "(1)07", "(1)08"}},
	{Name: "Imprisonment & Kidnapping", Codes: []string{"(1)09", "(1)10"}},
	{Name: "Assault on Officers", Codes: []string{"(1)13", "(1)14", "(1)15", "(4)15"}},
	{Name: "Property Crimes", Codes: []string{"(2)01", "(2)04", "(2)06", "(2)07", "(2)09", "(2)10"}},
	{Name: "Theft & Burglary", Codes: []string{"(2)05", "(2)08", "(2)11", "(2)12", "(2)13"}},
	{Name: "Trespassing", Codes: []string{"(2)02", "(2)03"}},
	{Name: "Property Damage", Codes: []string{"(2)14", "(2)16", "(2)17"}},
	{Name: "Public Order", Codes: []string{"(2)15", "(3)01", "(3)02", "(3)03", "(3)04"}},
	{Name: "Government Interference", Codes: []string{"(4)01", "(4)02", "(4)03", "(4)04"}},
	{Name: "Officer Obstruction", Codes: []string{"(4)05", "(4)06", "(4)07", "(4)08"}},
	{Name: "Custody & Justice", Codes: []string{"(4)09", "(4)10", "(4)13", "(4)14", "(4)16"}},
	{Name: "Evidence & Compliance", Codes: []string{"(4)11", "(4)12", "(4)17", "(4)18", "(4)19"}},
	{Name: "Public Disturbance", Codes: []string{"(5)01", "(5)02", "(5)03"}},
	{Name: "Drug Offenses", Codes: []string{"(6)04", "(6)05", "(6)06", "(6)08", "(6)09"}},
	{Name: "Animal & Child Safety", Codes: []string{"(7)01", "(7)04"}},
	{Name: "Licensing & Registration", Codes: []string{"(8)01", "(8)02", "(8)03"}},
	{Name: "Accident Requirements", Codes: []string{"(8)04", "(8)05"}},
	{Name: "Traffic Signals & Signs", Codes: []string{"(8)06", "(8)20"}},
	{Name: "Lane & Direction", Codes: []string{"(8)07", "(8)08", "(8)12", "(8)13", "(8)14"}},
	{Name: "Yielding & Following", Codes: []string{"(8)09", "(8)10", "(8)11", "(8)39"}},
	{Name: "Speeding", Codes: []string{"(8)15", "(8)16", "(8)17", "(8)18", "(8)32"}},
	{Name: "Parking & Stopping", Codes: []string{"(8)19", "(8)21", "(8)53"}},
	{Name: "Reckless Driving", Codes: []string{"(8)22", "(8)23", "(8)24", "(8)49"}},
	{Name: "DUI & Impairment", Codes: []string{"(8)25", "(8)40"}},
	{Name: "Evasion & Road Rage", Codes: []string{"(8)26", "(8)29", "(8)30", "(8)47"}},
	{Name: "Traffic Equipment", Codes: []string{"(8)36", "(8)37", "(8)43", "(8)54", "(8)55"}},
	{Name: "Vehicle Condition", Codes: []string{"(8)50", "(8)52"}},
	{Name: "Driving Behavior", Codes: []string{"(8)31", "(8)33", "(8)34", "(8)35", "(8)41", "(8)42", "(8)51"}},
	{Name: "Citation & Accidents", Codes: []string{"(8)38", "(8)44"}},
	{Name: "Vehicular Crimes", Codes: []string{"(8)45", "(8)46", "(8)48"}},
	{Name: "Weapons", Codes: []string{"(9)01", "(9)02", "(9)03", "(9)04", "(9)05", "(9)06"}},
}
