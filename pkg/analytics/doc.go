// Package analytics computes descriptive statistics over Arc Raiders
// records already fetched by the client.
//
// All functions are pure: they read their input and never modify it.
// Optional numeric fields that are absent on a record are skipped by the
// aggregate functions and count as zero when ranking.
//
//	weapons, _ := client.Weapons(ctx, nil)
//	summary := analytics.WeaponStats(weapons)
//	best := analytics.BestWeapon(weapons, analytics.ByDamage)
package analytics
