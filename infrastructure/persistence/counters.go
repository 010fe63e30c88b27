package persistence

import "go.mongodb.org/mongo-driver/v2/bson"

// counterFilter appends a positivity guard to the filter when delta is a
// decrement, so an $inc never drives the counter below zero.
func counterFilter(filter bson.D, field string, delta int64) bson.D {
	if delta < 0 {
		filter = append(filter, bson.E{Key: field, Value: bson.D{{Key: "$gt", Value: 0}}})
	}
	return filter
}
