package dataset

// Northwind employee records used as the seed set for the employees dataset.
// Requests for nine or fewer rows return a shuffled subset of these; larger
// requests extend the set with synthetic entries (see employees below).

const (
	photoBlobA = "0x151C2F00020000000D000E0014002100FFFFFFFF4269746D617020496D616765005061696E742E506963747572650001050000020000000700000050427275736800000000000000000020540000424D20540000000000007600000028000000C0000000DF0000000100040000000000A0530000CE0E0000D80E0000000000"
	photoBlobB = "0x151C2F00020000000D000E0014002100FFFFFFFF4269746D617020496D616765005061696E742E506963747572650001050000020000000700000050427275736800000000000000000080540000424D80540000000000007600000028000000C0000000E0000000010004000000000000540000CE0E0000D80E0000000000"
	photoBlobC = "0x151C2F00020000000D000E0014002100FFFFFFFF4269746D617020496D616765005061696E742E506963747572650001050000020000000700000050427275736800000000000000000020540000424D16540000000000007600000028000000C0000000DF0000000100040000000000A0530000CE0E0000D80E0000000000"
)

var employeeSeed = []Row{
	{
		"employeeID": 1, "lastName": "Davolio", "firstName": "Nancy",
		"title": "Sales Representative", "titleOfCourtesy": "Ms.",
		"birthDate": "1948-12-08 00:00:00.000", "hireDate": "1992-05-01 00:00:00.000",
		"address": "507 20th Ave. E. Apt. 2A", "city": "Seattle", "region": "WA",
		"postalCode": "98122", "country": "USA", "homePhone": "(206) 555-9857",
		"extension": "5467", "photo": photoBlobA,
		"notes":     "Education includes a BA in psychology from Colorado State University in 1970.  She also completed The Art of the Cold Call.  Nancy is a member of Toastmasters International.",
		"reportsTo": 2, "photoPath": "http://accweb/emmployees/davolio.bmp",
	},
	{
		"employeeID": 2, "lastName": "Fuller", "firstName": "Andrew",
		"title": "Vice President Sales", "titleOfCourtesy": "Dr.",
		"birthDate": "1952-02-19 00:00:00.000", "hireDate": "1992-08-14 00:00:00.000",
		"address": "908 W. Capital Way", "city": "Tacoma", "region": "WA",
		"postalCode": "98401", "country": "USA", "homePhone": "(206) 555-9482",
		"extension": "3457", "photo": photoBlobA,
		"notes":     "Andrew received his BTS commercial in 1974 and a Ph.D. in international marketing from the University of Dallas in 1981.  He is fluent in French and Italian and reads German.  He joined the company as a sales representative was promoted to sales manager",
		"reportsTo": nil, "photoPath": "http://accweb/emmployees/fuller.bmp",
	},
	{
		"employeeID": 3, "lastName": "Leverling", "firstName": "Janet",
		"title": "Sales Representative", "titleOfCourtesy": "Ms.",
		"birthDate": "1963-08-30 00:00:00.000", "hireDate": "1992-04-01 00:00:00.000",
		"address": "722 Moss Bay Blvd.", "city": "Kirkland", "region": "WA",
		"postalCode": "98033", "country": "USA", "homePhone": "(206) 555-3412",
		"extension": "3355", "photo": photoBlobB,
		"notes":     "Janet has a BS degree in chemistry from Boston College (1984). She has also completed a certificate program in food retailing management.  Janet was hired as a sales associate in 1991 and promoted to sales representative in February 1992.",
		"reportsTo": 2, "photoPath": "http://accweb/emmployees/leverling.bmp",
	},
	{
		"employeeID": 4, "lastName": "Peacock", "firstName": "Margaret",
		"title": "Sales Representative", "titleOfCourtesy": "Mrs.",
		"birthDate": "1937-09-19 00:00:00.000", "hireDate": "1993-05-03 00:00:00.000",
		"address": "4110 Old Redmond Rd.", "city": "Redmond", "region": "WA",
		"postalCode": "98052", "country": "USA", "homePhone": "(206) 555-8122",
		"extension": "5176", "photo": photoBlobA,
		"notes":     "Margaret holds a BA in English literature from Concordia College (1958) and an MA from the American Institute of Culinary Arts (1966).  She was assigned to the London office temporarily from July through November 1992.",
		"reportsTo": 2, "photoPath": "http://accweb/emmployees/peacock.bmp",
	},
	{
		"employeeID": 5, "lastName": "Buchanan", "firstName": "Steven",
		"title": "Sales Manager", "titleOfCourtesy": "Mr.",
		"birthDate": "1955-03-04 00:00:00.000", "hireDate": "1993-10-17 00:00:00.000",
		"address": "14 Garrett Hill", "city": "London", "region": nil,
		"postalCode": "SW1 8JR", "country": "UK", "homePhone": "(71) 555-4848",
		"extension": "3453", "photo": photoBlobA,
		"notes":     "Steven Buchanan graduated from St. Andrews University in Scotland with a BSC degree in 1976.  Upon joining the company as a sales representative in 1992 he spent 6 months in an orientation program at the Seattle office.",
		"reportsTo": 2, "photoPath": "http://accweb/emmployees/buchanan.bmp",
	},
	{
		"employeeID": 6, "lastName": "Suyama", "firstName": "Michael",
		"title": "Sales Representative", "titleOfCourtesy": "Mr.",
		"birthDate": "1963-07-02 00:00:00.000", "hireDate": "1993-10-17 00:00:00.000",
		"address": "Coventry House Miner Rd.", "city": "London", "region": nil,
		"postalCode": "EC2 7JR", "country": "UK", "homePhone": "(71) 555-7773",
		"extension": "428", "photo": photoBlobC,
		"notes":     "Michael is a graduate of Sussex University (MA Economics 1983) and the University of California at Los Angeles (MBA marketing 1986).  He has also taken the courses Multi-Cultural Selling and Time Management for the Sales Professional.",
		"reportsTo": 5, "photoPath": "http://accweb/emmployees/davolio.bmp",
	},
	{
		"employeeID": 7, "lastName": "King", "firstName": "Robert",
		"title": "Sales Representative", "titleOfCourtesy": "Mr.",
		"birthDate": "1960-05-29 00:00:00.000", "hireDate": "1994-01-02 00:00:00.000",
		"address": "Edgeham Hollow Winchester Way", "city": "London", "region": nil,
		"postalCode": "RG1 9SP", "country": "UK", "homePhone": "(71) 555-5598",
		"extension": "465", "photo": photoBlobC,
		"notes":     "Robert King served in the Peace Corps and traveled extensively before completing his degree in English at the University of Michigan in 1992 the year he joined the company.",
		"reportsTo": 5, "photoPath": "http://accweb/emmployees/davolio.bmp",
	},
	{
		"employeeID": 8, "lastName": "Callahan", "firstName": "Laura",
		"title": "Inside Sales Coordinator", "titleOfCourtesy": "Ms.",
		"birthDate": "1958-01-09 00:00:00.000", "hireDate": "1994-03-05 00:00:00.000",
		"address": "4726 11th Ave. N.E.", "city": "Seattle", "region": "WA",
		"postalCode": "98105", "country": "USA", "homePhone": "(206) 555-1189",
		"extension": "2344", "photo": photoBlobC,
		"notes":     "Laura received a BA in psychology from the University of Washington.  She has also completed a course in business French.  She reads and writes French.",
		"reportsTo": 2, "photoPath": "http://accweb/emmployees/davolio.bmp",
	},
	{
		"employeeID": 9, "lastName": "Dodsworth", "firstName": "Anne",
		"title": "Sales Representative", "titleOfCourtesy": "Ms.",
		"birthDate": "1966-01-27 00:00:00.000", "hireDate": "1994-11-15 00:00:00.000",
		"address": "7 Houndstooth Rd.", "city": "London", "region": nil,
		"postalCode": "WG2 7LT", "country": "UK", "homePhone": "(71) 555-4444",
		"extension": "452", "photo": photoBlobC,
		"notes":     "Anne has a BA degree in English from St. Lawrence College.  She is fluent in French and German.",
		"reportsTo": 5, "photoPath": "http://accweb/emmployees/davolio.bmp",
	},
}

// EmployeeSeedSize is the number of records in the fixed employee seed set.
const EmployeeSeedSize = 9

// employees returns count employee rows. Up to EmployeeSeedSize rows come
// from a shuffled copy of the seed set; beyond that, synthetic entries are
// appended with ids continuing monotonically past the seed ids. Synthetic
// reportsTo values reference seed ids only (or are nil), so the hierarchy
// never dangles into synthetic territory.
func (g *Generator) employees(count int) []Row {
	shuffled := make([]Row, len(employeeSeed))
	copy(shuffled, employeeSeed)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count <= len(shuffled) {
		return cloneRows(shuffled[:count])
	}

	result := cloneRows(shuffled)
	additional := count - len(employeeSeed)
	for i := 0; i < additional; i++ {
		base := shuffled[i%len(shuffled)]
		row := cloneRow(base)
		row["employeeID"] = len(employeeSeed) + i + 1
		row["firstName"] = g.firstName()
		row["lastName"] = g.lastName()
		row["title"] = g.pick(employeeTitles)
		row["titleOfCourtesy"] = g.pick(courtesyTitles)
		row["city"] = g.pick(cities)
		row["region"] = g.pick(regions)
		row["country"] = g.pick(countries)
		row["homePhone"] = g.phone()
		row["extension"] = intString(g.rng.IntN(9999))
		row["address"] = g.streetAddress()
		row["postalCode"] = intString(g.rng.IntN(89999) + 10000)
		row["birthDate"] = g.date("1950-01-01", "1990-12-31")
		row["hireDate"] = g.date("1990-01-01", "2020-12-31")
		if g.rng.Float64() > 0.3 {
			row["reportsTo"] = g.rng.IntN(len(employeeSeed)) + 1
		} else {
			row["reportsTo"] = nil
		}
		result = append(result, row)
	}
	return result
}

var employeeTitles = []string{
	"Sales Representative", "Sales Manager", "Vice President Sales",
	"Inside Sales Coordinator", "Account Executive", "Business Development Manager",
	"Customer Success Manager", "Sales Director", "Regional Sales Manager",
}

var courtesyTitles = []string{"Mr.", "Ms.", "Mrs.", "Dr.", "Prof."}

var cities = []string{
	"Seattle", "Tacoma", "Kirkland", "Redmond", "London",
	"New York", "Los Angeles", "Chicago", "Boston", "San Francisco",
}

var regions = []string{"WA", "CA", "NY", "MA", "IL", "TX", "FL", "PA", "OH", "GA"}

var countries = []string{"USA", "UK", "Canada", "Australia", "Germany", "France", "Japan", "India"}

var streets = []string{
	"Main St", "Oak Ave", "Pine Rd", "Elm St", "Maple Dr", "Cedar Ln", "Birch Way", "Willow Blvd",
}

func cloneRow(r Row) Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func cloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = cloneRow(r)
	}
	return out
}
