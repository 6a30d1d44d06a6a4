package store

// SQL query constants. PostgresStore methods reference these constants.

const gameColumns = `
		app_id, name, final_price, initial_price, discount_percent, currency,
		notify_urls, enabled, last_checked_at, added_at, updated_at`

// Tracked game queries.
const (
	queryAddGame = `
		INSERT INTO tracked_games (
			app_id, name, notify_urls, enabled, added_at, updated_at
		) VALUES (
			@app_id, @name, @notify_urls, @enabled, now(), now()
		)
		ON CONFLICT (app_id) DO NOTHING
		RETURNING added_at, updated_at`

	queryGetGame = `SELECT` + gameColumns + `
		FROM tracked_games
		WHERE app_id = $1`

	queryListGamesAll = `SELECT` + gameColumns + `
		FROM tracked_games
		ORDER BY added_at, app_id`

	queryListGamesEnabled = `SELECT` + gameColumns + `
		FROM tracked_games
		WHERE enabled = true
		ORDER BY added_at, app_id`

	queryDeleteGame = `DELETE FROM tracked_games WHERE app_id = $1`

	querySetGameEnabled = `
		UPDATE tracked_games SET
			enabled = $2,
			updated_at = now()
		WHERE app_id = $1`

	queryAddNotifyURL = `
		UPDATE tracked_games SET
			notify_urls = CASE
				WHEN $2::text = ANY(notify_urls) THEN notify_urls
				ELSE array_append(notify_urls, $2::text)
			END,
			updated_at = now()
		WHERE app_id = $1`

	queryRemoveNotifyURL = `
		UPDATE tracked_games SET
			notify_urls = array_remove(notify_urls, $2::text),
			updated_at = now()
		WHERE app_id = $1 AND $2::text = ANY(notify_urls)`

	queryClearNotifyURLs = `
		UPDATE tracked_games t SET
			notify_urls = '{}',
			updated_at = now()
		FROM (
			SELECT app_id, cardinality(notify_urls) AS n
			FROM tracked_games
			WHERE app_id = $1
			FOR UPDATE
		) old
		WHERE t.app_id = old.app_id
		RETURNING old.n`

	queryRecordPrice = `
		UPDATE tracked_games SET
			name = COALESCE(NULLIF(@name::text, ''), name),
			final_price = @final_price,
			initial_price = @initial_price,
			discount_percent = @discount_percent,
			currency = @currency,
			last_checked_at = @checked_at,
			updated_at = now()
		WHERE app_id = @app_id`

	queryCountGames = `
		SELECT COUNT(*) AS total, COUNT(*) FILTER (WHERE enabled = true) AS enabled
		FROM tracked_games`
)
