package repositories

import (
	"time"

	"baladi/internal/models/db_models"
	"baladi/pkg/utils"
)

// Seed data for the demo deployment. Each function returns a fresh
// slice so stores never share backing arrays.

func DefaultCategories() []db_models.Category {
	return []db_models.Category{
		{ID: "cat_news", NameEn: "News & Updates", NameAr: "الأخبار والتحديثات", Description: "General news and updates", Icon: "newspaper", Status: db_models.StatusInactive},
		{ID: "cat_sports", NameEn: "Sports & Recreation", NameAr: "الرياضة والترفيه", Description: "Sports events and activities", Icon: "trophy", Status: db_models.StatusInactive},
		{ID: "cat_culture", NameEn: "Culture & Arts", NameAr: "الثقافة والفنون", Description: "Cultural events and arts", Icon: "palette", Status: db_models.StatusActive},
		{ID: "cat_health", NameEn: "Health & Safety", NameAr: "الصحة والسلامة", Description: "Health advisories and safety info", Icon: "heart", Status: db_models.StatusActive},
		{ID: "cat_env", NameEn: "Environment", NameAr: "البيئة", Description: "Environmental initiatives", Icon: "leaf", Status: db_models.StatusActive},
		{ID: "cat_edu", NameEn: "Education", NameAr: "التعليم", Description: "Educational programs", Icon: "graduation-cap", Status: db_models.StatusInactive},
	}
}

func DefaultInterests() []db_models.Interest {
	now := utils.Now()
	mk := func(id, en, ar, categoryID string) db_models.Interest {
		return db_models.Interest{
			ID: id, NameEn: en, NameAr: ar, CategoryID: categoryID,
			Status: db_models.StatusActive, CreatedAt: now, UpdatedAt: now,
		}
	}
	return []db_models.Interest{
		mk("int_1", "Local Events", "الفعاليات المحلية", "cat_news"),
		mk("int_2", "Government Announcements", "الإعلانات الحكومية", "cat_news"),
		mk("int_3", "Football", "كرة القدم", "cat_sports"),
		mk("int_4", "Basketball", "كرة السلة", "cat_sports"),
		mk("int_5", "Museums", "المتاحف", "cat_culture"),
	}
}

func DefaultMunicipalities() []db_models.Municipality {
	now := utils.Now()
	return []db_models.Municipality{
		{
			ID: "mun_riyadh", NameEn: "Riyadh Municipality", NameAr: "أمانة الرياض",
			Region: "Riyadh", Country: "Saudi Arabia",
			ContactEmail: "info@riyadh.gov.sa", ContactPhone: "0112345678",
			Population: 7600000, CategoryIDs: []string{"cat_news", "cat_health"}, InterestIDs: []string{"int_1"},
			Status: db_models.StatusActive, SubscriptionStatus: db_models.SubNone,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "mun_bsalim", NameEn: "Bsalim", NameAr: "",
			Region: "Maten", Country: "Lebanon",
			ContactEmail: "bsalim@gmail.com", ContactPhone: "048052369",
			Population: 5000, CategoryIDs: []string{}, InterestIDs: []string{},
			Status: db_models.StatusInactive, SubscriptionStatus: db_models.SubCancelled,
			CreatedAt: now, UpdatedAt: now,
		},
	}
}

func DefaultActivities() []db_models.ActivityItem {
	now := utils.Now()
	mk := func(id string, kind db_models.ActionKind, entity string, typ db_models.EntityType, age time.Duration) db_models.ActivityItem {
		return db_models.ActivityItem{
			ID: id, ActionKind: kind, ActionLabel: kind.Label(),
			Entity: entity, Type: typ, User: "Admin User",
			OccurredAt: now.Add(-age),
		}
	}
	return []db_models.ActivityItem{
		mk("act_1", db_models.ActionBulkActivate, "10 interests", db_models.TypeInterest, 24*time.Hour),
		mk("act_2", db_models.ActionBulkDeactivate, "10 interests", db_models.TypeInterest, 24*time.Hour),
		mk("act_3", db_models.ActionBulkDelete, "5 municipalities", db_models.TypeMunicipality, 24*time.Hour),
		mk("act_4", db_models.ActionDelete, "test", db_models.TypeCategory, 48*time.Hour),
		mk("act_5", db_models.ActionCreate, "test", db_models.TypeCategory, 48*time.Hour),
		mk("act_6", db_models.ActionCreate, "Test Interest UI", db_models.TypeInterest, 48*time.Hour),
		mk("act_7", db_models.ActionUpdate, "Test Municipality", db_models.TypeMunicipality, 48*time.Hour),
		mk("act_8", db_models.ActionCancelSubscription, "Riyadh Municipality", db_models.TypeSubscription, 48*time.Hour),
		mk("act_9", db_models.ActionResumeSubscription, "Riyadh Municipality", db_models.TypeSubscription, 48*time.Hour),
		mk("act_10", db_models.ActionPauseSubscription, "Riyadh Municipality - Basic", db_models.TypeSubscription, 48*time.Hour),
	}
}
