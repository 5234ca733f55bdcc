// Package api declares the splitledger RPC surface: request and response
// messages, procedure names, and constructors for Connect handlers and
// clients of SplitService and GroupService.
//
// Messages are plain Go structs encoded as JSON by Codec, so any Connect
// client (or curl with Content-Type: application/json) can call them:
//
//	curl -X POST localhost:8080/splitledger.v1.SplitService/CalculateSplits \
//	  -H 'Content-Type: application/json' \
//	  -d '{"total":90,"policy":"shares","inputs":[{"member_id":"a","value":2},{"member_id":"b","value":1}]}'
package api
