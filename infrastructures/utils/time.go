package utils

import "time"

// SeoulLocation is Korea Standard Time, the timezone of every place
// the resolver handles.
var SeoulLocation *time.Location

func init() {
	var err error
	SeoulLocation, err = time.LoadLocation("Asia/Seoul")
	if err != nil {
		// fall back to the fixed offset, KST has no DST
		SeoulLocation = time.FixedZone("KST", 9*3600)
	}
}

// Now returns the current time in KST.
func Now() time.Time {
	return time.Now().In(SeoulLocation)
}

// Unix converts a Unix timestamp to KST.
func Unix(sec int64, nsec int64) time.Time {
	return time.Unix(sec, nsec).In(SeoulLocation)
}

// ToSeoul converts any time to KST.
func ToSeoul(t time.Time) time.Time {
	return t.In(SeoulLocation)
}
