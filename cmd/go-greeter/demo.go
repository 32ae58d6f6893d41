package main

import "github.com/tartampluch/go-greeter/internal/engine"

// Sample inputs for the demo command and for birthdays without a source.

// sampleDates includes one malformed value to show the error path.
var sampleDates = []string{"1999.02.12", "1999-02-12", "2025-10-03", "2030-02-12"}

type ticketRequest struct {
	min, max, quantity int
}

// sampleTickets covers an out-of-range max, an oversized quantity and two valid draws.
var sampleTickets = []ticketRequest{
	{1, 1332, 3},
	{1, 100, 400},
	{1, 100, 5},
	{500, 1000, 6},
}

var samplePhones = []string{
	`067\t123 4567`,
	`(095) 234-5678\n`,
	"+380 44 123 4567",
	"380501234567",
	"    +38(050)123-32-34",
	"     0503451234",
	"(050)8889900",
	"38050-111-22-22",
	"38050 111 22 11   ",
}

var sampleUsers = []engine.RawUser{
	{Name: "John Doe", Birthday: "1985.01.01"},
	{Name: "Jane Smith", Birthday: "1990.10.07"},
	{Name: "Iben Ziya", Birthday: "2000.10.09"},
	{Name: "Yusri Dosia", Birthday: "1999.05.23"},
	{Name: "Siddiqa Sawney", Birthday: "1992.12.30"},
	{Name: "Gul Farrukh", Birthday: "1990.12.28"},
	{Name: "Sabah Svetomir", Birthday: "1982.10.11"},
	{Name: "Ranjit Tricia", Birthday: "2004.02.29"},
}
