package model

import "time"

//Contact is a single broadcast recipient created during CSV ingestion.
//Sent flips to true exactly once, after a confirmed delivery to the gateway.
type Contact struct {
	Id        uint32 `storm:"id,increment"`
	OwnerId   uint32 `storm:"index"`
	Phone     string `storm:"index"`
	Name      string
	Amount    *float64
	Sent      bool      `storm:"index"`
	BatchDate string    //date of the ingest batch, date-only
	CreatedAt time.Time `storm:"index"`
}
