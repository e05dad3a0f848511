package catalog

import (
	"net/http"
	"slices"
)

// Operations returns the complete tool catalog in presentation order.
func Operations() []Operation {
	return slices.Clone(operations)
}

var operations = []Operation{
	{
		Name:        "list_sites",
		Title:       "List sites",
		Description: "List energy sites registered on the GridFlux platform. Supports filtering by operational status and region. Without credentials this returns the read-only demonstration portfolio.",
		Area:        "sites",
		Method:      http.MethodGet,
		Path:        "/api/sites",
		DemoPath:    "/api/demo/sites",
		Params: []Param{
			{Name: "status", Type: TypeString, In: InQuery, Description: "Filter by operational status, for example active or commissioning."},
			{Name: "region", Type: TypeString, In: InQuery, Description: "Filter by grid region code, for example CAISO or DE-LU."},
		},
	},
	{
		Name:        "get_site",
		Title:       "Get site",
		Description: "Fetch one site with its metadata, interconnection details and current operational status.",
		Area:        "sites",
		Method:      http.MethodGet,
		Path:        "/api/sites/{site_id}",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InPath, Required: true, Description: "Numeric site identifier."},
		},
	},
	{
		Name:        "create_site",
		Title:       "Create site",
		Description: "Register a new energy site. The platform assigns the identifier and the initial commissioning status.",
		Area:        "sites",
		Method:      http.MethodPost,
		Path:        "/api/sites",
		Params: []Param{
			{Name: "name", Type: TypeString, In: InBody, Required: true, Description: "Human-readable site name."},
			{Name: "region", Type: TypeString, In: InBody, Required: true, Description: "Grid region code the site connects to."},
			{Name: "timezone", Type: TypeString, In: InBody, Description: "IANA timezone of the site, for example Europe/Berlin."},
			{Name: "notes", Type: TypeString, In: InBody, Description: "Free-form operator notes."},
		},
	},
	{
		Name:        "list_assets",
		Title:       "List assets",
		Description: "List energy assets (batteries, solar arrays, EV chargers and similar) across sites. Without credentials this returns the demonstration fleet.",
		Area:        "assets",
		Method:      http.MethodGet,
		Path:        "/api/assets",
		DemoPath:    "/api/demo/assets",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InQuery, Description: "Restrict to assets of one site."},
			{Name: "asset_type", Type: TypeString, In: InQuery, Description: "Filter by asset type, for example battery or solar."},
			{Name: "status", Type: TypeString, In: InQuery, Description: "Filter by asset status, for example online or maintenance."},
		},
	},
	{
		Name:        "get_asset",
		Title:       "Get asset",
		Description: "Fetch one asset with its nameplate data, telemetry endpoints and current state.",
		Area:        "assets",
		Method:      http.MethodGet,
		Path:        "/api/assets/{asset_id}",
		Params: []Param{
			{Name: "asset_id", Type: TypeInteger, In: InPath, Required: true, Description: "Numeric asset identifier."},
		},
	},
	{
		Name:        "register_asset",
		Title:       "Register asset",
		Description: "Register a new asset under a site. The platform validates the nameplate capacity against the site's grid connection.",
		Area:        "assets",
		Method:      http.MethodPost,
		Path:        "/api/assets",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InBody, Required: true, Description: "Site the asset belongs to."},
			{Name: "asset_type", Type: TypeString, In: InBody, Required: true, Description: "Asset type, for example battery, solar, wind or ev_charger."},
			{Name: "capacity_kw", Type: TypeNumber, In: InBody, Required: true, Description: "Nameplate capacity in kilowatts."},
			{Name: "manufacturer", Type: TypeString, In: InBody, Description: "Equipment manufacturer."},
			{Name: "model", Type: TypeString, In: InBody, Description: "Equipment model designation."},
		},
	},
	{
		Name:        "list_grid_connections",
		Title:       "List grid connections",
		Description: "List grid interconnection points with their voltage level, contracted capacity and operator.",
		Area:        "grid connections",
		Method:      http.MethodGet,
		Path:        "/api/grid-connections",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InQuery, Description: "Restrict to connections of one site."},
		},
	},
	{
		Name:        "get_grid_connection",
		Title:       "Get grid connection",
		Description: "Fetch one grid connection including metering point identifiers and capacity limits.",
		Area:        "grid connections",
		Method:      http.MethodGet,
		Path:        "/api/grid-connections/{connection_id}",
		Params: []Param{
			{Name: "connection_id", Type: TypeInteger, In: InPath, Required: true, Description: "Numeric grid connection identifier."},
		},
	},
	{
		Name:        "list_meter_readings",
		Title:       "List meter readings",
		Description: "List interval meter readings for a site over an optional time window. The platform aggregates to the requested granularity.",
		Area:        "metering",
		Method:      http.MethodGet,
		Path:        "/api/sites/{site_id}/readings",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InPath, Required: true, Description: "Site whose readings to list."},
			{Name: "start", Type: TypeString, In: InQuery, Description: "Window start as an RFC 3339 timestamp."},
			{Name: "end", Type: TypeString, In: InQuery, Description: "Window end as an RFC 3339 timestamp."},
			{Name: "granularity", Type: TypeString, In: InQuery, Description: "Aggregation interval for the returned series.", Enum: []string{"quarter_hour", "hour", "day"}},
		},
	},
	{
		Name:        "submit_meter_reading",
		Title:       "Submit meter reading",
		Description: "Submit one meter reading. The platform validates plausibility against the meter history before accepting it.",
		Area:        "metering",
		Method:      http.MethodPost,
		Path:        "/api/meter-readings",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InBody, Required: true, Description: "Site the meter belongs to."},
			{Name: "meter_id", Type: TypeString, In: InBody, Required: true, Description: "Meter point identifier."},
			{Name: "reading_kwh", Type: TypeNumber, In: InBody, Required: true, Description: "Cumulative reading in kilowatt hours."},
			{Name: "recorded_at", Type: TypeString, In: InBody, Required: true, Description: "Reading timestamp as RFC 3339."},
		},
	},
	{
		Name:        "create_dispatch",
		Title:       "Create dispatch",
		Description: "Create a dispatch instruction for a site or a single asset. The platform checks grid constraints and schedules execution; this call only submits the instruction.",
		Area:        "dispatch",
		Method:      http.MethodPost,
		Path:        "/api/dispatch",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InBody, Required: true, Description: "Site to dispatch."},
			{Name: "mode", Type: TypeString, In: InBody, Required: true, Description: "Dispatch mode.", Enum: []string{"charge", "discharge", "curtail"}},
			{Name: "setpoint_kw", Type: TypeNumber, In: InBody, Required: true, Description: "Target power setpoint in kilowatts."},
			{Name: "asset_id", Type: TypeInteger, In: InBody, Description: "Limit the dispatch to one asset instead of the whole site."},
			{Name: "duration_minutes", Type: TypeInteger, In: InBody, Description: "How long the setpoint should hold."},
			{Name: "reason", Type: TypeString, In: InBody, Description: "Operator-facing reason recorded with the dispatch."},
		},
	},
	{
		Name:        "get_dispatch",
		Title:       "Get dispatch",
		Description: "Fetch one dispatch instruction with its execution state and measured response.",
		Area:        "dispatch",
		Method:      http.MethodGet,
		Path:        "/api/dispatch/{dispatch_id}",
		Params: []Param{
			{Name: "dispatch_id", Type: TypeInteger, In: InPath, Required: true, Description: "Numeric dispatch identifier."},
		},
	},
	{
		Name:        "list_dispatches",
		Title:       "List dispatches",
		Description: "List dispatch instructions, newest first. Supports filtering by site and execution status.",
		Area:        "dispatch",
		Method:      http.MethodGet,
		Path:        "/api/dispatch",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InQuery, Description: "Restrict to dispatches of one site."},
			{Name: "status", Type: TypeString, In: InQuery, Description: "Filter by execution status, for example pending or completed."},
		},
	},
	{
		Name:        "cancel_dispatch",
		Title:       "Cancel dispatch",
		Description: "Cancel a pending or running dispatch. Already completed dispatches cannot be cancelled; the platform reports such conflicts in the error result.",
		Area:        "dispatch",
		Method:      http.MethodPost,
		Path:        "/api/dispatch/{dispatch_id}/cancel",
		Params: []Param{
			{Name: "dispatch_id", Type: TypeInteger, In: InPath, Required: true, Description: "Dispatch to cancel."},
			{Name: "reason", Type: TypeString, In: InBody, Description: "Cancellation reason recorded in the dispatch log."},
		},
	},
	{
		Name:        "list_settlements",
		Title:       "List settlements",
		Description: "List market settlement records. Each settlement carries the energy volumes, prices and the hash link to its predecessor.",
		Area:        "settlements",
		Method:      http.MethodGet,
		Path:        "/api/settlements",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InQuery, Description: "Restrict to settlements of one site."},
			{Name: "period", Type: TypeString, In: InQuery, Description: "Billing period, for example 2026-07."},
		},
	},
	{
		Name:        "get_settlement",
		Title:       "Get settlement",
		Description: "Fetch one settlement record with its line items and chain hashes.",
		Area:        "settlements",
		Method:      http.MethodGet,
		Path:        "/api/settlements/{settlement_id}",
		Params: []Param{
			{Name: "settlement_id", Type: TypeInteger, In: InPath, Required: true, Description: "Numeric settlement identifier."},
		},
	},
	{
		Name:        "verify_settlement_chain",
		Title:       "Verify settlement chain",
		Description: "Ask the platform to verify the hash chain from the genesis settlement up to the given record. Verification runs entirely on the platform; the result reports the first broken link, if any.",
		Area:        "settlements",
		Method:      http.MethodGet,
		Path:        "/api/settlements/{settlement_id}/verify",
		Params: []Param{
			{Name: "settlement_id", Type: TypeInteger, In: InPath, Required: true, Description: "Settlement at which verification ends."},
		},
	},
	{
		Name:        "get_carbon_ledger",
		Title:       "Get carbon ledger",
		Description: "Fetch carbon accounting entries with emission factors and attested totals. Without credentials this returns the demonstration ledger.",
		Area:        "carbon",
		Method:      http.MethodGet,
		Path:        "/api/carbon/ledger",
		DemoPath:    "/api/demo/carbon/ledger",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InQuery, Description: "Restrict to entries of one site."},
			{Name: "period", Type: TypeString, In: InQuery, Description: "Accounting period, for example 2026-07."},
		},
	},
	{
		Name:        "create_carbon_attestation",
		Title:       "Create carbon attestation",
		Description: "Request a signed carbon attestation for a site and period. Signing happens on the platform; the response contains the attestation reference.",
		Area:        "carbon",
		Method:      http.MethodPost,
		Path:        "/api/carbon/attestations",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InBody, Required: true, Description: "Site to attest."},
			{Name: "period", Type: TypeString, In: InBody, Required: true, Description: "Accounting period to attest, for example 2026-07."},
			{Name: "scope", Type: TypeString, In: InBody, Description: "Emission scope selector, for example scope2."},
		},
	},
	{
		Name:        "list_dr_programs",
		Title:       "List demand response programs",
		Description: "List demand response programs open for enrollment, with their capacity requirements and compensation terms. Without credentials this returns the demonstration programs.",
		Area:        "demand response",
		Method:      http.MethodGet,
		Path:        "/api/demand-response/programs",
		DemoPath:    "/api/demo/demand-response/programs",
		Params: []Param{
			{Name: "region", Type: TypeString, In: InQuery, Description: "Filter by grid region code."},
		},
	},
	{
		Name:        "enroll_dr_program",
		Title:       "Enroll in demand response program",
		Description: "Enroll a site in a demand response program. The platform validates the site's qualified capacity before confirming.",
		Area:        "demand response",
		Method:      http.MethodPost,
		Path:        "/api/demand-response/enrollments",
		Params: []Param{
			{Name: "program_id", Type: TypeInteger, In: InBody, Required: true, Description: "Program to enroll in."},
			{Name: "site_id", Type: TypeInteger, In: InBody, Required: true, Description: "Site to enroll."},
			{Name: "capacity_kw", Type: TypeNumber, In: InBody, Description: "Committed capacity in kilowatts; defaults to the site's qualified capacity."},
		},
	},
	{
		Name:        "list_dr_events",
		Title:       "List demand response events",
		Description: "List demand response events with their activation windows and per-site performance.",
		Area:        "demand response",
		Method:      http.MethodGet,
		Path:        "/api/demand-response/events",
		Params: []Param{
			{Name: "program_id", Type: TypeInteger, In: InQuery, Description: "Restrict to events of one program."},
			{Name: "status", Type: TypeString, In: InQuery, Description: "Filter by event status, for example scheduled or settled."},
		},
	},
	{
		Name:        "generate_compliance_package",
		Title:       "Generate compliance package",
		Description: "Ask the platform to assemble a regulatory compliance package for a site and reporting period. Generation is asynchronous; poll get_compliance_package for the result.",
		Area:        "compliance",
		Method:      http.MethodPost,
		Path:        "/api/compliance/packages",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InBody, Required: true, Description: "Site the package covers."},
			{Name: "framework", Type: TypeString, In: InBody, Required: true, Description: "Reporting framework.", Enum: []string{"iso50001", "reps", "eu_taxonomy"}},
			{Name: "period", Type: TypeString, In: InBody, Required: true, Description: "Reporting period, for example 2026-Q2."},
		},
	},
	{
		Name:        "get_compliance_package",
		Title:       "Get compliance package",
		Description: "Fetch a compliance package by identifier, including its generation status and download reference once ready.",
		Area:        "compliance",
		Method:      http.MethodGet,
		Path:        "/api/compliance/packages/{package_id}",
		Params: []Param{
			{Name: "package_id", Type: TypeInteger, In: InPath, Required: true, Description: "Numeric package identifier."},
		},
	},
	{
		Name:        "get_reliability_score",
		Title:       "Get reliability score",
		Description: "Fetch the platform-computed reliability score for a site, with the contributing outage and response statistics.",
		Area:        "reliability",
		Method:      http.MethodGet,
		Path:        "/api/reliability/sites/{site_id}/score",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InPath, Required: true, Description: "Site to score."},
		},
	},
	{
		Name:        "list_reliability_events",
		Title:       "List reliability events",
		Description: "List grid reliability events (outages, frequency excursions, voltage sags) the platform has recorded.",
		Area:        "reliability",
		Method:      http.MethodGet,
		Path:        "/api/reliability/events",
		Params: []Param{
			{Name: "site_id", Type: TypeInteger, In: InQuery, Description: "Restrict to events affecting one site."},
			{Name: "severity", Type: TypeString, In: InQuery, Description: "Filter by severity, for example minor or critical."},
		},
	},
	{
		Name:        "list_procurement_offers",
		Title:       "List procurement offers",
		Description: "List open energy procurement offers with prices, volumes and delivery windows.",
		Area:        "procurement",
		Method:      http.MethodGet,
		Path:        "/api/procurement/offers",
		Params: []Param{
			{Name: "market", Type: TypeString, In: InQuery, Description: "Filter by market, for example day_ahead or intraday."},
			{Name: "delivery_date", Type: TypeString, In: InQuery, Description: "Filter by delivery date, for example 2026-09-01."},
		},
	},
	{
		Name:        "create_procurement_order",
		Title:       "Create procurement order",
		Description: "Place an order against a procurement offer. The platform performs the credit and position checks and returns the order confirmation.",
		Area:        "procurement",
		Method:      http.MethodPost,
		Path:        "/api/procurement/orders",
		Params: []Param{
			{Name: "offer_id", Type: TypeInteger, In: InBody, Required: true, Description: "Offer to order against."},
			{Name: "quantity_mwh", Type: TypeNumber, In: InBody, Required: true, Description: "Quantity in megawatt hours."},
		},
	},
	{
		Name:        "get_integration_status",
		Title:       "Get integration status",
		Description: "Report the health of the platform's field protocol integrations and their last successful data exchange.",
		Area:        "integrations",
		Method:      http.MethodGet,
		Path:        "/api/integrations/status",
		Params: []Param{
			{Name: "protocol", Type: TypeString, In: InQuery, Description: "Restrict to one field protocol.", Enum: []string{"modbus", "openadr", "ocpp"}},
		},
	},
	{
		Name:        "provision_sandbox",
		Title:       "Provision sandbox",
		Description: "Provision an isolated sandbox tenant pre-loaded with sample data for integration testing. The response contains the sandbox base URL and its expiry.",
		Area:        "sandbox",
		Method:      http.MethodPost,
		Path:        "/api/sandbox/provision",
		Params: []Param{
			{Name: "template", Type: TypeString, In: InBody, Description: "Sample data template, for example microgrid or utility_portfolio."},
			{Name: "ttl_hours", Type: TypeInteger, In: InBody, Description: "Sandbox lifetime in hours before automatic teardown."},
		},
	},
	{
		Name:        "get_platform_health",
		Title:       "Get platform health",
		Description: "Report the platform's own health status and component availability.",
		Area:        "health",
		Method:      http.MethodGet,
		Path:        "/api/health",
	},
}
