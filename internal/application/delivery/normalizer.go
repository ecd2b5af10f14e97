package delivery

import (
	"fmt"

	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// PlatformNormalizer maps one platform's payload shape into the canonical
// delivery order representation. One implementation per platform, registered
// in the NormalizerRegistry, so adding a platform never touches dispatch code.
type PlatformNormalizer interface {
	Normalize(payload map[string]interface{}) domain.CanonicalDeliveryOrder
	ExtractItems(rawItems []interface{}) []domain.CanonicalItem
}

// NormalizerRegistry dispatches normalization by platform.
type NormalizerRegistry struct {
	byPlatform map[domain.Platform]PlatformNormalizer
	log        logger.Logger
}

func NewNormalizerRegistry(log logger.Logger) *NormalizerRegistry {
	return &NormalizerRegistry{
		byPlatform: map[domain.Platform]PlatformNormalizer{
			domain.PlatformZomato: zomatoNormalizer{},
			domain.PlatformSwiggy: swiggyNormalizer{},
		},
		log: log,
	}
}

// Normalize maps a platform payload to the canonical form. An unknown
// platform yields the zero value and an error log, never a panic: payloads
// arrive from an external network boundary and are treated as adversarial.
func (r *NormalizerRegistry) Normalize(platform domain.Platform, payload map[string]interface{}) domain.CanonicalDeliveryOrder {
	n, ok := r.byPlatform[platform]
	if !ok {
		r.log.Error("unknown delivery platform for normalization", logger.String("platform", platform.String()))
		return domain.CanonicalDeliveryOrder{}
	}
	if payload == nil {
		return domain.CanonicalDeliveryOrder{}
	}
	return n.Normalize(payload)
}

// ExtractItems maps the platform's raw item structures to canonical items.
// A missing or empty list is a recoverable condition: the materializer
// inserts a placeholder later, so this only warns.
func (r *NormalizerRegistry) ExtractItems(platform domain.Platform, rawItems []interface{}) []domain.CanonicalItem {
	n, ok := r.byPlatform[platform]
	if !ok {
		r.log.Error("unknown delivery platform for item extraction", logger.String("platform", platform.String()))
		return nil
	}
	if len(rawItems) == 0 {
		r.log.Warn("no items data in delivery payload", logger.String("platform", platform.String()))
		return nil
	}
	return n.ExtractItems(rawItems)
}

/* ============ defensive accessors for untrusted payload maps ============ */

func getMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key]; ok {
		if sub, ok := v.(map[string]interface{}); ok {
			return sub
		}
	}
	return nil
}

func getList(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key]; ok {
		if list, ok := v.([]interface{}); ok {
			return list
		}
	}
	return nil
}

// getString coerces strings and JSON numbers; platforms are inconsistent
// about whether identifiers arrive quoted.
func getString(m map[string]interface{}, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case bool:
		return fmt.Sprintf("%v", t)
	default:
		return ""
	}
}

func getFloat(m map[string]interface{}, key string) float64 {
	v, ok := m[key]
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	default:
		return 0
	}
}

func getInt(m map[string]interface{}, key string, def int) int {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	default:
		return def
	}
}

// addonNames pulls the "name" field from a list of addon/variation objects.
func addonNames(list []interface{}) []string {
	names := make([]string, 0, len(list))
	for _, entry := range list {
		if m, ok := entry.(map[string]interface{}); ok {
			names = append(names, getString(m, "name"))
		}
	}
	return names
}
