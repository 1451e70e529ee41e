package store

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES (?, ?);`

	findUserByUsername = `SELECT username, password_hash
    FROM users
    WHERE username = ?;`

	createCodebook = `INSERT INTO codebooks (username, codebook_name)
    VALUES (?, ?)
    ON CONFLICT (username, codebook_name) DO NOTHING;`

	findCodebookID = `SELECT codebook_id
    FROM codebooks
    WHERE username = ? AND codebook_name = ?;`

	codebookExists = `SELECT 1
    FROM codebooks
    WHERE codebook_id = ?;`

	getUserCodebooks = `SELECT codebook_id, username, codebook_name, created_time
    FROM codebooks
    WHERE username = ?
    ORDER BY created_time DESC, codebook_id DESC;`

	deleteCodebookEntries = `DELETE FROM entries
    WHERE codebook_id = ?;`

	deleteCodebook = `DELETE FROM codebooks
    WHERE codebook_id = ?;`

	addEntry = `INSERT INTO entries (codebook_id, address, public_key, encrypted_password, notes)
    VALUES (?, ?, ?, ?, ?);`

	updateEntry = `UPDATE entries
    SET address = ?, public_key = ?, encrypted_password = ?, notes = ?
    WHERE entry_id = ?;`

	deleteEntry = `DELETE FROM entries
    WHERE entry_id = ?;`
)
