package redisstore

import "github.com/google/uuid"

// All keys of one resource share the {resourceID} hash tag so every script
// touches a single cluster slot.
const resourcesKey = "sale:resources"

type saleKeys struct {
	prefix    string
	stock     string // remaining counter
	total     string // seeded capacity
	pool      string // set of free unit ids
	holders   string // hash unit -> session
	sold      string // set of converted units
	waiting   string // zset buyer -> enqueue ms * 1000 + arrival sequence
	enqueued  string // count of distinct entries ever enqueued
	arrivals  string // arrival sequence breaking same-millisecond ties
	cursor    string // pass cursor
	grants    string // hash buyer -> absolute rank
	grantedAt string // zset buyer -> grant ms
	expiry    string // zset session -> expiry ms
	buyers    string // hash buyer -> session
	bought    string // set of buyers with a converted reservation
}

func keysFor(resourceID uuid.UUID) saleKeys {
	p := "sale:{" + resourceID.String() + "}:"
	return saleKeys{
		prefix:    p,
		stock:     p + "stock",
		total:     p + "total",
		pool:      p + "units",
		holders:   p + "holders",
		sold:      p + "sold",
		waiting:   p + "waiting",
		enqueued:  p + "enqueued",
		arrivals:  p + "arrivals",
		cursor:    p + "cursor",
		grants:    p + "grants",
		grantedAt: p + "grants:at",
		expiry:    p + "reservations",
		buyers:    p + "buyers",
		bought:    p + "purchasers",
	}
}

func (k saleKeys) reservation(sessionID uuid.UUID) string {
	return k.prefix + "reservation:" + sessionID.String()
}

func (k saleKeys) all() []string {
	return []string{
		k.stock, k.total, k.pool, k.holders, k.sold,
		k.waiting, k.enqueued, k.arrivals, k.cursor, k.grants, k.grantedAt,
		k.expiry, k.buyers, k.bought,
	}
}
