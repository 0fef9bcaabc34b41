// Package comic provides the catalog record type and the request payloads
// used to create and update records.
//
// Key types:
//
//   - Comic: a single catalog entry with an integer identifier
//   - CreatePayload: input for single and bulk creation, with presence
//     validation of the required fields (title, author, year)
//   - UpdatePayload: partial update input; omitted fields keep their
//     prior values
//   - FlexInt: a JSON integer that also accepts numeric strings, used
//     wherever clients may send numbers as text (years, bulk-delete ids)
package comic
