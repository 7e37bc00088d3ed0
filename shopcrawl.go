// Package shopcrawl provides a CLI tool that crawls Shopify storefronts
// via their sitemaps, extracts structured product records from product
// pages, and writes a normalized schema.org-flavored catalog.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, gemini/).
package shopcrawl
