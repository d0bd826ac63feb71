package inventory

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wms/backend/internal/domain/shared"
)

// DefaultLocationCapacity is used when no capacity is given
const DefaultLocationCapacity = 100

var locationCodePattern = regexp.MustCompile(`^([A-Z])-(\d{2})-(\d{2})-(\d{2})$`)

// Location represents a warehouse storage location.
// Code format: Zone-Aisle-Rack-Bin (e.g. "A-01-02-03").
type Location struct {
	shared.BaseAggregateRoot
	Code     string
	Name     string
	Zone     string
	Aisle    int
	Rack     int
	Bin      int
	Capacity int
	IsActive bool
}

// NewLocation creates a location from its components
func NewLocation(zone string, aisle, rack, bin int, name string, capacity int) (*Location, error) {
	zone = strings.ToUpper(strings.TrimSpace(zone))
	if len(zone) != 1 || zone[0] < 'A' || zone[0] > 'Z' {
		return nil, shared.NewDomainError("INVALID_ZONE", "Zone must be a single letter (A-Z)")
	}
	if aisle < 1 || aisle > 99 {
		return nil, shared.NewDomainError("INVALID_AISLE", "Aisle must be between 1 and 99")
	}
	if rack < 1 || rack > 99 {
		return nil, shared.NewDomainError("INVALID_RACK", "Rack must be between 1 and 99")
	}
	if bin < 1 || bin > 99 {
		return nil, shared.NewDomainError("INVALID_BIN", "Bin must be between 1 and 99")
	}
	if capacity < 1 {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Capacity must be at least 1")
	}

	code := fmt.Sprintf("%s-%02d-%02d-%02d", zone, aisle, rack, bin)
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Zone %s, Aisle %d, Rack %d, Bin %d", zone, aisle, rack, bin)
	}

	return &Location{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Zone:              zone,
		Aisle:             aisle,
		Rack:              rack,
		Bin:               bin,
		Capacity:          capacity,
		IsActive:          true,
	}, nil
}

// NewLocationFromCode creates a location by parsing a code string
// like "A-01-02-03"
func NewLocationFromCode(code, name string, capacity int) (*Location, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Code is required")
	}

	match := locationCodePattern.FindStringSubmatch(code)
	if match == nil {
		return nil, shared.NewDomainError("INVALID_CODE", "Code must be in format 'Z-AA-RR-BB' (e.g. 'A-01-02-03')")
	}

	aisle, _ := strconv.Atoi(match[2])
	rack, _ := strconv.Atoi(match[3])
	bin, _ := strconv.Atoi(match[4])

	return NewLocation(match[1], aisle, rack, bin, name, capacity)
}

// Activate marks the location as active
func (l *Location) Activate() {
	l.IsActive = true
	l.UpdatedAt = time.Now()
}

// Deactivate marks the location as inactive
func (l *Location) Deactivate() {
	l.IsActive = false
	l.UpdatedAt = time.Now()
}
