package penalcode

// Arrest is the table used by the arrest form. Some offenses carry jail time
// only and have a 0.00 fine.
var Arrest = newCatalog("arrest", []Charge{
	// Section 1 - Criminal/Violence
	entry("(1)01", "Criminal Threats", "3750.00", Seconds(60)),
	entry("(1)02", "Assault", "3750.00", Seconds(240)),
	entry("(1)03", "Assault with a Deadly Weapon", "10000.00", Seconds(120)),
	entry("(1)04", "Battery", "1000.00", Seconds(60)),
	entry("(1)05", "Aggravated Battery", "0.00", Seconds(120)),
	entry("(1)06", "Attempted Murder", "10000.00", Seconds(240)),
	entry("(1)07", "Manslaughter", "0.00", Seconds(270)),
	entry("(1)08", "Murder", "0.00", Seconds(600)),
	entry("(1)09", "False Imprisonment", "1000.00", Seconds(60)),
	entry("(1)10", "Kidnapping", "0.00", Seconds(210)),
	entry("(1)11", "Domestic Violence", "1000.00", Seconds(60)),
	entry("(1)12", "Domestic Violence (Physical Traumatic Injury)", "10000.00", Seconds(120)),
	entry("(1)13", "Assault on a Public Servant", "1000.00", Seconds(120)),
	entry("(1)14", "Attempted Assault on a Public Servant", "1000.00", Seconds(100)),
	entry("(1)15", "Assault on a Peace Officer", "2000.00", Seconds(180)),

	// Section 2 - Property Crimes
	entry("(2)01", "Arson", "0.00", Seconds(210)),
	entry("(2)02", "Trespassing", "1000.00", Seconds(15)),
	entry("(2)03", "Trespassing within a Restricted Facility", "10000.00", Seconds(60)),
	entry("(2)04", "Burglary", "0.00", Seconds(150)),
	entry("(2)05", "Possession of Burglary Tools", "1000.00", Seconds(60)),
	entry("(2)06", "Robbery", "0.00", Seconds(150)),
	entry("(2)07", "Armed Robbery", "0.00", Seconds(390)),
	entry("(2)08", "Petty Theft", "1000.00", None),
	entry("(2)09", "Grand Theft", "0.00", Seconds(90)),
	entry("(2)10", "Grand Theft Auto", "0.00", Seconds(90)),
	entry("(2)11", "Receiving Stolen Property", "10000.00", Seconds(90)),
	entry("(2)12", "Extortion", "10000.00", Seconds(120)),
	entry("(2)13", "Forgery / Fraud", "0.00", Seconds(90)),
	entry("(2)14", "Vandalism", "0.00", Seconds(90)),
	entry("(2)15", "Loitering", "1000.00", None),
	entry("(2)16", "Destruction of Civilian Property", "1000.00", Seconds(60)),
	entry("(2)17", "Destruction of Government Property", "10000.00", Seconds(120)),

	// Section 3 - Public Order
	entry("(3)01", "Lewd or Dissolute Conduct in Public", "0.00", Seconds(90)),
	entry("(3)02", "Stalking", "0.00", Seconds(90)),
	entry("(3)03", "Public Urination", "0.00", Seconds(120)),
	entry("(3)04", "Public Defecation", "0.00", Seconds(120)),

	// Section 4 - Government/Law Enforcement
	entry("(4)01", "Bribery", "10000.00", Seconds(120)),
	entry("(4)02", "Dissuading a Victim", "0.00", Seconds(60)),
	entry("(4)03", "False Information to a Peace Officer", "0.00", Seconds(30)),
	entry("(4)04", "Filing a False Police Report", "0.00", Seconds(60)),
	entry("(4)05", "Failure to Identify to a Peace Officer", "1000.00", Seconds(60)),
	entry("(4)06", "Impersonation of a Peace Officer", "1000.00", Seconds(60)),
	entry("(4)07", "Obstruction of a Peace Officer", "1000.00", Seconds(60)),
	entry("(4)08", "Resisting a Peace Officer", "1000.00", Seconds(120)),
	entry("(4)09", "Escape from Custody", "1000.00", Seconds(210)),
	entry("(4)10", "Prisoner Breakout", "10000.00", Seconds(90)),
	entry("(4)11", "Misuse of Government Hotline", "1000.00", None),
	entry("(4)12", "Tampering with Evidence", "1000.00", None),
	entry("(4)13", "Introduction of Contraband", "0.00", Seconds(120)),
	entry("(4)14", "False Arrest", "10000.00", Seconds(120)),
	entry("(4)15", "Assault on a Peace Officer", "2000.00", Seconds(180)),
	entry("(4)16", "Obstruction of Justice", "500.00", Seconds(60)),
	entry("(4)17", "Disorderly Conduct", "1000.00", Seconds(60)),
	entry("(4)18", "Failure to Comply with a Lawful Order", "500.00", Seconds(60)),
	entry("(4)19", "Aiding and Abetting", "0.00", Seconds(90)),

	// Section 5 - Public Disturbance
	entry("(5)01", "Disturbing the Peace", "500.00", None),
	entry("(5)02", "Unlawful Assembly", "0.00", Seconds(90)),
	entry("(5)03", "Inciting Riot", "1000.00", Seconds(120)),

	// Section 6 - Drug Related
	entry("(6)04", "Maintaining a Place for the Purpose of Distribution", "10000.00", Seconds(90)),
	entry("(6)05", "Manufacture of a Controlled Substance", "50000.00", Seconds(180)),
	entry("(6)06", "Sale of a Controlled Substance", "5000.00", Seconds(180)),
	entry("(6)08", "Under the Influence of a Controlled Substance", "2000.00", Seconds(180)),
	entry("(6)09", "Detention of Mentally Disordered Persons", "0.00", Seconds(180)),

	// Section 7 - Animal/Child
	entry("(7)01", "Animal Abuse / Cruelty", "20000.00", Seconds(90)),
	entry("(7)04", "Child Endangerment", "10000.00", Seconds(60)),

	// Section 8 - Traffic Violations
	entry("(8)01", "Invalid / No Vehicle Registration / Insurance", "200.00", None),
	entry("(8)02", "Driving Without a License", "1000.00", None),
	entry("(8)03", "Driving With a Suspended or Revoked License", "1000.00", Seconds(60)),
	entry("(8)04", "Accident Reporting Requirements - Property Damage", "1000.00", None),
	entry("(8)05", "Accident Reporting Requirements - Injury or Death", "10000.00", Seconds(120)),
	entry("(8)06", "Failure to Obey Traffic Signal", "250.00", None),
	entry("(8)07", "Driving Opposite Direction", "500.00", None),
	entry("(8)08", "Failure to Maintain Lane", "250.00", None),
	entry("(8)09", "Unsafe Following Distance", "250.00", None),
	entry("(8)10", "Failure to Yield to Civilian", "250.00", None),
	entry("(8)11", "Failure to Yield to Emergency Vehicles", "250.00", None),
	entry("(8)12", "Unsafe Turn", "250.00", None),
	entry("(8)13", "Unsafe Lane Change", "250.00", None),
	entry("(8)14", "Illegal U-Turn", "250.00", None),
	entry("(8)15", "Speeding (5-15 MPH Over)", "250.00", None),
	entry("(8)16", "Speeding (16-25 MPH Over)", "360.00", None),
	entry("(8)17", "Speeding (26+ MPH Over)", "500.00", None),
	entry("(8)18", "Felony Speeding (100 MPH+)", "5000.00", Seconds(30)),
	entry("(8)19", "Unreasonably Slow / Stopped", "250.00", None),
	entry("(8)20", "Failure to Obey Stop Sign / RED LIGHT", "250.00", None),
	entry("(8)21", "Illegally Parked", "250.00", None),
	entry("(8)22", "Reckless Driving", "1000.00", Seconds(30)),
	entry("(8)23", "Street Racing", "1000.00", Seconds(30)),
	entry("(8)24", "Throwing Objects", "1000.00", None),
	entry("(8)25", "Operating While Intoxicated", "2000.00", Seconds(60)),
	entry("(8)26", "Evading a Peace Officer", "0.00", Seconds(270)),
	entry("(8)29", "Felony Evading a Peace Officer", "0.00", Seconds(300)),
	entry("(8)30", "Road Rage", "0.00", Seconds(30)),
	entry("(8)31", "Littering", "1000.00", None),
	entry("(8)32", "Unsafe Speed for Conditions", "2000.00", None),
	entry("(8)33", "Hogging Passing Lane", "250.00", None),
	entry("(8)34", "Impeding Traffic", "250.00", None),
	entry("(8)35", "Jaywalking", "250.00", None),
	entry("(8)36", "Unnecessary Use of Horn", "400.00", None),
	entry("(8)37", "Excessive Music / Engine Sounds", "400.00", None),
	entry("(8)38", "Failure to Sign Citation", "250.00", Seconds(30)),
	entry("(8)39", "Failure to Yield to Pedestrian", "250.00", None),
	entry("(8)40", "Distracted Driving", "1000.00", None),
	entry("(8)41", "Driving on Shoulder / Emergency Lane", "250.00", None),
	entry("(8)42", "Move Over Law", "1000.00", None),
	entry("(8)43", "Driving Without Headlights", "250.00", None),
	entry("(8)44", "Hit and Run", "500.00", None),
	entry("(8)45", "Attempted Vehicular Manslaughter", "750.00", Seconds(60)),
	entry("(8)46", "Vehicular Manslaughter", "750.00", Seconds(120)),
	entry("(8)47", "Reckless Evasion", "750.00", Seconds(120)),
	entry("(8)48", "Possession of a Stolen Vehicle", "0.00", Seconds(120)),
	entry("(8)49", "Reckless Endangerments", "1000.00", Seconds(60)),
	entry("(8)50", "Unroadworthy Vehicle", "1000.00", None),
	entry("(8)51", "Drifting on a Public Road", "250.00", None),
	entry("(8)52", "Failure to Control Vehicle", "250.00", None),
	entry("(8)53", "Unsafe Parking (Parking Ticket)", "100.00", None),
	entry("(8)54", "Failure to Use Turn Signal", "100.00", None),
	entry("(8)55", "Failure to Display License Plate (W/ only)", "300.00", None),

	// Section 9 - Weapons
	entry("(9)01", "Possession of an Illegal Weapon", "1000.00", Seconds(60)),
	entry("(9)02", "Brandishing a Firearm", "1000.00", Seconds(60)),
	entry("(9)03", "Illegal Discharge of a Firearm", "0.00", Seconds(90)),
	entry("(9)04", "Unlicensed Possession of a Firearm", "0.00", Seconds(90)),
	entry("(9)05", "Possession of a Stolen Weapon", "0.00", Seconds(90)),
	entry("(9)06", "Unlawful Distribution of a Firearm", "0.00", Seconds(90)),
})
