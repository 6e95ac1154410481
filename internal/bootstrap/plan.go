// internal/bootstrap/plan.go
package bootstrap

// A Step is a named group of SQL statements. Every statement is written to be
// safe to re-run and safe to race with another process running the same plan:
// creation is always conditional, column additions never rewrite existing
// rows, and nothing is ever dropped.
type Step struct {
	Name       string
	Statements []string
}

// Plan returns the full ordered step sequence. Running the whole plan against
// a store in any prior state (absent, oldest known shape, current shape, or
// mid-evolution by a concurrent instance) leaves it in the target shape;
// running it again is a no-op.
//
// Ordering matters: a step never references an object a previous step has not
// guaranteed to exist. In particular offers.location_id is added only after
// the locations table is ensured, and every index is created strictly after
// the column it covers.
func Plan() []Step {
	return []Step{
		{
			Name: "ensure users table",
			Statements: []string{`
				CREATE TABLE IF NOT EXISTS users (
					id            BIGSERIAL PRIMARY KEY,
					phone         TEXT NOT NULL,
					name          TEXT NOT NULL DEFAULT '',
					password_hash TEXT NOT NULL DEFAULT '',
					created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
				);`,
			},
		},
		{
			Name: "ensure users columns",
			Statements: []string{
				`ALTER TABLE users ADD COLUMN IF NOT EXISTS name TEXT NOT NULL DEFAULT '';`,
				`ALTER TABLE users ADD COLUMN IF NOT EXISTS password_hash TEXT NOT NULL DEFAULT '';`,
				`ALTER TABLE users ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ NOT NULL DEFAULT now();`,
			},
		},
		{
			// The unique index is the final arbiter for duplicate phones;
			// any pre-insert existence check is only an optimization.
			Name: "ensure users phone index",
			Statements: []string{
				`CREATE UNIQUE INDEX IF NOT EXISTS users_phone_uidx ON users(phone);`,
			},
		},
		{
			Name: "ensure organizations table",
			Statements: []string{`
				CREATE TABLE IF NOT EXISTS organizations (
					id         BIGSERIAL PRIMARY KEY,
					name       TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMPTZ NOT NULL DEFAULT now()
				);`,
			},
		},
		{
			Name: "ensure organization_users table",
			Statements: []string{`
				CREATE TABLE IF NOT EXISTS organization_users (
					org_id     BIGINT NOT NULL,
					user_id    BIGINT NOT NULL,
					role       TEXT NOT NULL DEFAULT 'owner',
					created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
					PRIMARY KEY (org_id, user_id)
				);`,
			},
		},
		{
			Name: "ensure locations table",
			Statements: []string{`
				CREATE TABLE IF NOT EXISTS locations (
					id         BIGSERIAL PRIMARY KEY,
					org_id     BIGINT NOT NULL,
					name       TEXT NOT NULL DEFAULT '',
					city       TEXT,
					address    TEXT,
					close_time TEXT,
					timezone   TEXT,
					created_at TIMESTAMPTZ NOT NULL DEFAULT now()
				);`,
			},
		},
		{
			Name: "ensure locations columns",
			Statements: []string{
				`ALTER TABLE locations ADD COLUMN IF NOT EXISTS city TEXT;`,
				`ALTER TABLE locations ADD COLUMN IF NOT EXISTS address TEXT;`,
				`ALTER TABLE locations ADD COLUMN IF NOT EXISTS close_time TEXT;`,
				`ALTER TABLE locations ADD COLUMN IF NOT EXISTS timezone TEXT;`,
			},
		},
		{
			Name: "ensure locations org index",
			Statements: []string{
				`CREATE INDEX IF NOT EXISTS locations_org_idx ON locations(org_id);`,
			},
		},
		{
			// The oldest deployed shape: merchants keyed only by the textual
			// restaurant_id business key, no numeric id at all.
			Name: "ensure merchants table",
			Statements: []string{`
				CREATE TABLE IF NOT EXISTS merchants (
					restaurant_id TEXT,
					api_key       TEXT,
					name          TEXT,
					phone         TEXT,
					address       TEXT,
					close_time    TEXT,
					created_at    TIMESTAMPTZ DEFAULT now()
				);`,
			},
		},
		{
			Name: "ensure merchants columns",
			Statements: []string{
				`ALTER TABLE merchants ADD COLUMN IF NOT EXISTS restaurant_id TEXT;`,
				`ALTER TABLE merchants ADD COLUMN IF NOT EXISTS api_key TEXT;`,
				`ALTER TABLE merchants ADD COLUMN IF NOT EXISTS name TEXT;`,
				`ALTER TABLE merchants ADD COLUMN IF NOT EXISTS phone TEXT;`,
				`ALTER TABLE merchants ADD COLUMN IF NOT EXISTS address TEXT;`,
				`ALTER TABLE merchants ADD COLUMN IF NOT EXISTS close_time TEXT;`,
				`ALTER TABLE merchants ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ DEFAULT now();`,
			},
		},
		{
			// Gives merchants a numeric surrogate key even where the deployed
			// id column is textual: add the column nullable, back it with a
			// sequence, resync the sequence past the highest numeric-looking
			// id, backfill, and only then forbid nulls. Non-numeric legacy
			// ids are ignored when computing the maximum so they cannot
			// corrupt it.
			Name: "ensure merchants surrogate id",
			Statements: []string{
				`ALTER TABLE merchants ADD COLUMN IF NOT EXISTS id BIGINT;`,
				`DO $mig$
				BEGIN
					IF NOT EXISTS (
						SELECT 1 FROM pg_class WHERE relkind = 'S' AND relname = 'merchants_id_seq'
					) THEN
						CREATE SEQUENCE merchants_id_seq;
						ALTER SEQUENCE merchants_id_seq OWNED BY merchants.id;
					END IF;
				END
				$mig$;`,
				`ALTER TABLE merchants ALTER COLUMN id SET DEFAULT nextval('merchants_id_seq');`,
				`DO $mig$
				DECLARE
					v_typ text;
					v_max bigint;
				BEGIN
					SELECT data_type INTO v_typ
					FROM information_schema.columns
					WHERE table_schema = current_schema() AND table_name = 'merchants' AND column_name = 'id';

					IF v_typ IN ('integer', 'bigint', 'smallint') THEN
						EXECUTE 'SELECT COALESCE(MAX(id), 0) FROM merchants' INTO v_max;
					ELSE
						EXECUTE $q$
							SELECT COALESCE(MAX(CASE WHEN id ~ '^[0-9]+$' THEN id::bigint ELSE NULL END), 0)
							FROM merchants
						$q$ INTO v_max;
					END IF;

					PERFORM setval('merchants_id_seq', v_max + 1, false);
				END
				$mig$;`,
				`UPDATE merchants SET id = nextval('merchants_id_seq') WHERE id IS NULL;`,
				`ALTER TABLE merchants ALTER COLUMN id SET NOT NULL;`,
			},
		},
		{
			Name: "ensure merchants business key index",
			Statements: []string{
				`CREATE UNIQUE INDEX IF NOT EXISTS merchants_rid_uidx ON merchants(restaurant_id);`,
			},
		},
		{
			Name: "ensure offers table",
			Statements: []string{`
				CREATE TABLE IF NOT EXISTS offers (
					id          BIGSERIAL PRIMARY KEY,
					merchant_id BIGINT,
					title       TEXT NOT NULL DEFAULT '',
					description TEXT,
					category    TEXT DEFAULT 'other',
					price       NUMERIC(12,2) NOT NULL DEFAULT 0,
					stock       INTEGER NOT NULL DEFAULT 1,
					image_url   TEXT NOT NULL DEFAULT '',
					expires_at  TIMESTAMPTZ,
					status      TEXT NOT NULL DEFAULT 'active',
					created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
				);`,
			},
		},
		{
			Name: "ensure offers columns",
			Statements: []string{
				`ALTER TABLE offers ADD COLUMN IF NOT EXISTS merchant_id BIGINT;`,
				`ALTER TABLE offers ADD COLUMN IF NOT EXISTS description TEXT;`,
				`ALTER TABLE offers ADD COLUMN IF NOT EXISTS category TEXT DEFAULT 'other';`,
				`ALTER TABLE offers ADD COLUMN IF NOT EXISTS price NUMERIC(12,2) NOT NULL DEFAULT 0;`,
				`ALTER TABLE offers ADD COLUMN IF NOT EXISTS stock INTEGER NOT NULL DEFAULT 1;`,
				`ALTER TABLE offers ADD COLUMN IF NOT EXISTS image_url TEXT NOT NULL DEFAULT '';`,
				`ALTER TABLE offers ADD COLUMN IF NOT EXISTS expires_at TIMESTAMPTZ;`,
				`ALTER TABLE offers ADD COLUMN IF NOT EXISTS status TEXT NOT NULL DEFAULT 'active';`,
				`ALTER TABLE offers ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ NOT NULL DEFAULT now();`,
			},
		},
		{
			// A store that predates the notion of a location gains the
			// reference without a blocking table rewrite. Must run after the
			// locations table is ensured.
			Name: "ensure offers location column",
			Statements: []string{
				`ALTER TABLE offers ADD COLUMN IF NOT EXISTS location_id BIGINT;`,
			},
		},
		{
			Name: "ensure offers indexes",
			Statements: []string{
				`CREATE INDEX IF NOT EXISTS offers_expires_idx ON offers(expires_at);`,
				`CREATE INDEX IF NOT EXISTS offers_status_idx ON offers(status);`,
				`CREATE INDEX IF NOT EXISTS offers_merchant_idx ON offers(merchant_id);`,
				`CREATE INDEX IF NOT EXISTS offers_location_idx ON offers(location_id);`,
			},
		},
	}
}
