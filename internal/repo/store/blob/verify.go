package blob

// Verify re-hashes a stored blob and compares it with its key.
func (bc *BlobContext) Verify(key string) (BlobStatus, error) {
	if _, err := ParseKey(key); err != nil {
		return Damaged, err
	}

	data, err := bc.FS.ReadFile(bc.path(key))
	if err != nil {
		if bc.FS.IsNotExist(err) {
			return Missing, nil
		}
		return Damaged, err
	}

	if Key(data) == key {
		return OK, nil
	}
	return Damaged, nil
}
