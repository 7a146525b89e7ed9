package dto

import jsoniter "github.com/json-iterator/go"

// JSON is the codec for every request and response body. It mirrors
// encoding/json behavior, including struct tags and TextMarshaler support.
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary
