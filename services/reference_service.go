package services

import (
	"log"
	"sync"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type TriggerRef struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type ReferenceData struct {
	TemptationTypes []string     `json:"temptation_types"`
	Triggers        []TriggerRef `json:"triggers"`
	Categories      []string     `json:"categories"`
}

var DefaultReferenceData = ReferenceData{
	TemptationTypes: []string{"Lujuria", "Gula", "Avaricia", "Pereza", "Ira", "Envidia", "Orgullo", "Otro"},
	Categories:      []string{"Emocional", "Fisico", "Digital", "Social", "Laboral", "Psicologico"},
	Triggers: []TriggerRef{
		{Name: "Soledad", Category: "Emocional"},
		{Name: "Estrés", Category: "Emocional"},
		{Name: "Aburrimiento", Category: "Emocional"},
		{Name: "Cansancio", Category: "Fisico"},
		{Name: "Hambre", Category: "Fisico"},
		{Name: "Redes sociales", Category: "Digital"},
		{Name: "Amigos", Category: "Social"},
		{Name: "Pareja", Category: "Social"},
		{Name: "Trabajo", Category: "Laboral"},
		{Name: "Fracaso", Category: "Psicologico"},
	},
}

// RefCache holds one fetched copy of the reference catalogs with an explicit
// freshness window. Owned and injected by whoever composes the service, so
// staleness is testable without touching wall-clock globals.
type RefCache struct {
	mu        sync.Mutex
	data      *ReferenceData
	fetchedAt time.Time
	ttl       time.Duration
}

func NewRefCache(ttl time.Duration) *RefCache {
	return &RefCache{ttl: ttl}
}

func (c *RefCache) Stale(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data == nil || now.Sub(c.fetchedAt) >= c.ttl
}

func (c *RefCache) Get(now time.Time) (*ReferenceData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil || now.Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.data, true
}

func (c *RefCache) Put(data *ReferenceData, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
	c.fetchedAt = now
}

type ReferenceService struct {
	db    *gorm.DB
	cache *RefCache
}

func NewReferenceService(db *gorm.DB, cache *RefCache) *ReferenceService {
	return &ReferenceService{db: db, cache: cache}
}

// Get returns the reference catalogs, served from cache within the TTL.
// A failed or empty DB read falls back to the built-in defaults rather
// than erroring; the selectors must always have options.
func (s *ReferenceService) Get(now time.Time) ReferenceData {
	if cached, ok := s.cache.Get(now); ok {
		return *cached
	}

	data := s.load()
	s.cache.Put(&data, now)
	return data
}

func (s *ReferenceService) load() ReferenceData {
	var kinds []models.TemptationType
	var triggers []models.TriggerType

	kindErr := s.db.Order("name").Find(&kinds).Error
	trigErr := s.db.Order("name").Find(&triggers).Error
	if kindErr != nil || trigErr != nil {
		log.Printf("reference data load failed (kinds: %v, triggers: %v), using defaults", kindErr, trigErr)
		return DefaultReferenceData
	}

	data := ReferenceData{}
	if len(kinds) > 0 {
		for _, k := range kinds {
			data.TemptationTypes = append(data.TemptationTypes, k.Name)
		}
	} else {
		data.TemptationTypes = DefaultReferenceData.TemptationTypes
	}

	if len(triggers) > 0 {
		seen := map[string]struct{}{}
		for _, t := range triggers {
			data.Triggers = append(data.Triggers, TriggerRef{Name: t.Name, Category: t.Category})
			if t.Category != "" {
				if _, ok := seen[t.Category]; !ok {
					seen[t.Category] = struct{}{}
					data.Categories = append(data.Categories, t.Category)
				}
			}
		}
	} else {
		data.Triggers = DefaultReferenceData.Triggers
	}
	if len(data.Categories) == 0 {
		data.Categories = DefaultReferenceData.Categories
	}
	return data
}

// SeedReferenceData fills empty catalog tables with the defaults.
func (s *ReferenceService) SeedReferenceData() error {
	var n int64
	if err := s.db.Model(&models.TemptationType{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		for _, name := range DefaultReferenceData.TemptationTypes {
			if err := s.db.Create(&models.TemptationType{Name: name}).Error; err != nil {
				return err
			}
		}
	}

	if err := s.db.Model(&models.TriggerType{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		for _, t := range DefaultReferenceData.Triggers {
			if err := s.db.Create(&models.TriggerType{Name: t.Name, Category: t.Category}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
