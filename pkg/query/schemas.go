package query

// Per-entity list schemas. Column references assume the join aliases used by
// the matching repository: tc for the transaction-count aggregate, pc for the
// profile-count aggregate.

// Clients is the list schema for the primary client entity.
var Clients = ListSchema{
	Table:         "clients",
	IDColumn:      "clients.id",
	SearchColumns: []string{"clients.name", "clients.email", "clients.contact", "clients.address"},
	SortColumns: map[string]string{
		"name":              "clients.name",
		"create_date":       "clients.created_at",
		"transaction_count": "COALESCE(tc.transaction_count, 0)",
	},
	DefaultSortKey:   "name",
	DefaultSortOrder: OrderAsc,
}

// Banks is the list schema for the primary bank entity.
var Banks = ListSchema{
	Table:         "banks",
	IDColumn:      "banks.id",
	SearchColumns: []string{"banks.name"},
	SortColumns: map[string]string{
		"name":              "banks.name",
		"create_date":       "banks.created_at",
		"transaction_count": "COALESCE(tc.transaction_count, 0)",
	},
	DefaultSortKey:   "name",
	DefaultSortOrder: OrderAsc,
}

// Cards is the list schema for the primary card entity.
var Cards = ListSchema{
	Table:         "cards",
	IDColumn:      "cards.id",
	SearchColumns: []string{"cards.name"},
	SortColumns: map[string]string{
		"name":              "cards.name",
		"create_date":       "cards.created_at",
		"transaction_count": "COALESCE(tc.transaction_count, 0)",
	},
	DefaultSortKey:   "name",
	DefaultSortOrder: OrderAsc,
}

// Transactions searches across the joined client/bank/card names plus the
// remark, and sorts by the ledger columns or the joined names.
var Transactions = ListSchema{
	Table:         "transactions",
	IDColumn:      "transactions.id",
	SearchColumns: []string{"clients.name", "banks.name", "cards.name", "transactions.remark"},
	SortColumns: map[string]string{
		"create_date":        "transactions.created_at",
		"transaction_amount": "transactions.transaction_amount",
		"client_name":        "clients.name",
		"bank_name":          "banks.name",
		"card_name":          "cards.name",
	},
	DefaultSortKey:   "create_date",
	DefaultSortOrder: OrderDesc,
}

// ProfilerClients is the list schema for the profiler client namespace.
var ProfilerClients = ListSchema{
	Table:         "profiler_clients",
	IDColumn:      "profiler_clients.id",
	SearchColumns: []string{"profiler_clients.name", "profiler_clients.email", "profiler_clients.contact"},
	SortColumns: map[string]string{
		"name":          "profiler_clients.name",
		"create_date":   "profiler_clients.created_at",
		"profile_count": "COALESCE(pc.profile_count, 0)",
	},
	DefaultSortKey:   "name",
	DefaultSortOrder: OrderAsc,
}

// ProfilerBanks is the list schema for the profiler bank namespace.
var ProfilerBanks = ListSchema{
	Table:         "profiler_banks",
	IDColumn:      "profiler_banks.id",
	SearchColumns: []string{"profiler_banks.name"},
	SortColumns: map[string]string{
		"name":          "profiler_banks.name",
		"create_date":   "profiler_banks.created_at",
		"profile_count": "COALESCE(pc.profile_count, 0)",
	},
	DefaultSortKey:   "name",
	DefaultSortOrder: OrderAsc,
}

// Profiles searches across the joined profiler client/bank names and the
// credit card number.
var Profiles = ListSchema{
	Table:    "profiler_profiles",
	IDColumn: "profiler_profiles.id",
	SearchColumns: []string{
		"profiler_clients.name",
		"profiler_banks.name",
		"profiler_profiles.credit_card_number",
	},
	SortColumns: map[string]string{
		"create_date":                "profiler_profiles.created_at",
		"client_name":                "profiler_clients.name",
		"bank_name":                  "profiler_banks.name",
		"pre_planned_deposit_amount": "profiler_profiles.pre_planned_deposit_amount",
		"status":                     "profiler_profiles.status",
	},
	DefaultSortKey:   "create_date",
	DefaultSortOrder: OrderDesc,
}

// ProfilerTransactions searches through the owning profile's card number and
// client name.
var ProfilerTransactions = ListSchema{
	Table:    "profiler_transactions",
	IDColumn: "profiler_transactions.id",
	SearchColumns: []string{
		"profiler_profiles.credit_card_number",
		"profiler_clients.name",
	},
	SortColumns: map[string]string{
		"create_date": "profiler_transactions.created_at",
		"amount":      "profiler_transactions.amount",
		"client_name": "profiler_clients.name",
	},
	DefaultSortKey:   "create_date",
	DefaultSortOrder: OrderDesc,
}
