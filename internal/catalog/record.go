package catalog

import (
	"regexp"
	"strconv"
)

// ipUnspecified marks catalog rows whose ingress-protection rating is not
// stated. Both sentinels appear in the source data.
var ipUnspecified = map[string]bool{
	"未標示": true,
	"未指定": true,
}

// SensorRecord is one catalog entry. Derived fields (CompatibleModules,
// SearchText) are computed once at load time; records are never mutated
// during a request.
type SensorRecord struct {
	Name             string
	Type             string
	Features         string
	IPRating         string
	OperatingTemp    string
	PowerConsumption *float64
	Range            string
	Precision        string

	CompatibleModules []string
	SearchText        string
}

var numberPattern = regexp.MustCompile(`-?\d+`)

// TempRange extracts the (min, max) operating temperature in °C from the
// free-text range. It reports ok=false when fewer than two signed integers
// are present, which disables temperature heuristics for the record.
func (r *SensorRecord) TempRange() (min, max int, ok bool) {
	if r.OperatingTemp == "" {
		return 0, 0, false
	}
	nums := numberPattern.FindAllString(r.OperatingTemp, -1)
	if len(nums) < 2 {
		return 0, 0, false
	}
	min, err1 := strconv.Atoi(nums[0])
	max, err2 := strconv.Atoi(nums[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return min, max, true
}

// HasIPRating reports whether the record carries a real ingress-protection
// code rather than an "unspecified" sentinel.
func (r *SensorRecord) HasIPRating() bool {
	return r.IPRating != "" && !ipUnspecified[r.IPRating]
}
