package penalcode

// Citation is the fine-only table used by the citation form.
var Citation = newCatalog("citation", []Charge{
	// Section 2 - Property Crimes
	entry("(2)08", "Petty Theft", "1000.00", None),
	entry("(2)15", "Loitering", "1000.00", None),

	// Section 4 - Government/Law Enforcement
	entry("(4)11", "Misuse of Government Hotline", "1000.00", None),
	entry("(4)12", "Tampering with Evidence", "1000.00", None),

	// Section 5 - Public Disturbance
	entry("(5)01", "Disturbing the Peace", "500.00", None),

	// Section 8 - Traffic Violations
	entry("(8)01", "Invalid / No Vehicle Registration / Insurance", "200.00", None),
	entry("(8)02", "Driving Without a License", "1000.00", None),
	entry("(8)04", "Accident Reporting Requirements - Property Damage", "1000.00", None),
	entry("(8)06", "Failure to Obey Traffic Signal", "250.00", None),
	entry("(8)07", "Driving Opposite Direction", "500.00", None),
	entry("(8)08", "Failure to Maintain Lane", "250.00", None),
	entry("(8)09", "Unsafe Following Distance", "250.00", None),
	entry("(8)10", "Failure to Yield to Civilian", "250.00", None),
	entry("(8)11", "Failure to Yield to Emergency Vehicles", "250.00", None),
	entry("(8)12", "Unsafe Turn", "250.00", None),
	entry("(8)13", "Unsafe Lane Change", "250.00", None),
	entry("(8)14", "Illegal U-Turn", "250.00", None),
	entry("(8)15", "Speeding (6-15 MPH Over)", "250.00", None),
	entry("(8)16", "Speeding (16-25 MPH Over)", "360.00", None),
	entry("(8)17", "Speeding (26+ MPH Over)", "500.00", None),
	entry("(8)19", "Unreasonably Slow / Stopped", "250.00", None),
	entry("(8)20", "Failure to Obey Stop Sign / RED LIGHT", "250.00", None),
	entry("(8)21", "Illegally Parked", "250.00", None),
	entry("(8)24", "Throwing Objects", "1000.00", None),
	entry("(8)31", "Littering", "1000.00", None),
	entry("(8)32", "Unsafe Speed for Conditions", "2000.00", None),
	entry("(8)33", "Hogging Passing Lane", "250.00", None),
	entry("(8)34", "Impeding Traffic", "250.00", None),
	entry("(8)35", "Jaywalking", "250.00", None),
	entry("(8)36", "Unnecessary Use of Horn", "400.00", None),
	entry("(8)37", "Excessive Music / Engine Sounds", "400.00", None),
	entry("(8)39", "Failure to Yield to Pedestrian", "250.00", None),
	entry("(8)40", "Distracted Driving", "1000.00", None),
	entry("(8)41", "Driving on Shoulder / Emergency Lane", "250.00", None),
	entry("(8)42", "Move Over Law", "1000.00", None),
	entry("(8)43", "Driving Without Headlights", "250.00", None),
	entry("(8)44", "Hit and Run", "500.00", None),
	entry("(8)50", "Unroadworthy Vehicle", "1000.00", None),
	entry("(8)51", "Drifting on a Public Road", "250.00", None),
	entry("(8)52", "Failure to Control Vehicle", "250.00", None),
	entry("(8)53", "Unsafe Parking (Parking Ticket)", "100.00", None),
	entry("(8)54", "Failure to Use Turn Signal", "100.00", None),
	entry("(8)55", "Failure to Display License Plate (W/ only)", "300.00", None),
})
