// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package api

// DocumentListTableForTest exposes the documents translation table to the
// external test package.
func DocumentListTableForTest() TranslationTable { return documentListTable }
